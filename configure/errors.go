package configure

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ExitError ends a resolution that must terminate the process. Anything the
// user needs to see has already been written when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps a Resolve error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// ValidationError is returned by Sanitize and CheckCompleteness hooks to
// reject option values.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func ValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigFileError reports a settings file that is missing or unreadable.
type ConfigFileError struct {
	Path string
	Err  error
}

func (e *ConfigFileError) Error() string {
	if errors.Is(e.Err, os.ErrNotExist) {
		return fmt.Sprintf("Can't find config file: '%s'", e.Path)
	}
	return fmt.Sprintf("config file '%s': %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() error { return e.Err }

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
