package configure

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/zhangel/go-configure/log"
	"github.com/zhangel/go-configure/log/logger"
)

type Options struct {
	args        []string
	programPath string
	version     string
	output      io.Writer
	errOutput   io.Writer
	logger      logger.Logger
}

type Option func(*Options) error

// WithArgs sets the command-line arguments, without the program name.
func WithArgs(args []string) Option {
	return func(opts *Options) error {
		opts.args = append([]string{}, args...)
		return nil
	}
}

// WithProgramPath sets the launching program, which locates the global
// settings file.
func WithProgramPath(path string) Option {
	return func(opts *Options) error {
		if path == "" {
			return errors.New("empty program path")
		}
		opts.programPath = path
		return nil
	}
}

// WithVersion enables --version.
func WithVersion(version string) Option {
	return func(opts *Options) error {
		opts.version = version
		return nil
	}
}

// WithOutput sets where help and version text go.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) error {
		opts.output = w
		return nil
	}
}

// WithErrorOutput sets where usage errors go.
func WithErrorOutput(w io.Writer) Option {
	return func(opts *Options) error {
		opts.errOutput = w
		return nil
	}
}

func WithLogger(l logger.Logger) Option {
	return func(opts *Options) error {
		opts.logger = l
		return nil
	}
}

func generateOptions(opt ...Option) (*Options, error) {
	opts := &Options{
		args:      os.Args[1:],
		output:    os.Stdout,
		errOutput: os.Stderr,
	}
	if len(os.Args) > 0 {
		opts.programPath = os.Args[0]
	}

	for _, o := range opt {
		if err := o(opts); err != nil {
			return nil, err
		}
	}

	if opts.logger == nil {
		opts.logger = log.DefaultLogger()
	}
	return opts, nil
}
