package configure

import (
	"github.com/zhangel/go-configure/declare"
)

// Declaration is implemented once per workflow and handed to Resolve.
type Declaration interface {
	// Description is a short summary printed at the top of the help text.
	Description() string

	// FrequentOptions registers options expected to change from run to run.
	FrequentOptions(group declare.Group)

	// AdvancedOptions registers options expected to change rarely. Their
	// help is hidden once a default exists, unless --allHelp is given.
	AdvancedOptions(group declare.Group)

	// Defaults are the lowest-precedence values of the primary section.
	Defaults() map[string]interface{}

	// Sanitize validates and normalizes the options present. It runs before
	// the options are written into the settings snapshot.
	Sanitize(opts *RunOptions) error

	// CheckCompleteness verifies that every required option has a value. It
	// runs after the options are written into the settings snapshot.
	CheckCompleteness(opts *RunOptions) error
}
