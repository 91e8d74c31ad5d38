package parser

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/zhangel/go-configure/declare"
)

const (
	FlagHelp    = "help"
	FlagVersion = "version"
	FlagConfig  = "config"
	FlagAllHelp = "allHelp"

	// UserConfigKey is the settings key the --config value is stored under.
	UserConfigKey = "userConfigPath"

	frequentTitle    = "Workflow options"
	advancedTitle    = "Extended options"
	advancedHelp     = "These options are either unlikely to be reset after initial site configuration or only of interest for workflow development/debugging. They will not be printed here if a default exists unless --allHelp is specified"
	hiddenSuffix     = " (hidden)"
	workflowEpilogue = `
Configuration will produce a workflow run script which
can execute the workflow on a single node or through
a cluster scheduler and resume any interrupted execution.
`
)

var (
	ErrDuplicateFlag = errors.New("flag declared twice")
	ErrReservedFlag  = errors.New("flag name is reserved")

	reservedFlags = map[string]struct{}{
		FlagHelp:    {},
		FlagVersion: {},
		FlagConfig:  {},
		FlagAllHelp: {},
	}
)

// DefaultValueError reports a settings value the flag's kind cannot parse.
type DefaultValueError struct {
	Name  string
	Value string
	Err   error
}

func (e *DefaultValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %v", e.Value, e.Name, e.Err)
}

func (e *DefaultValueError) Unwrap() error { return e.Err }

// Declarer is the part of a workflow declaration the parser needs.
type Declarer interface {
	Description() string
	FrequentOptions(group declare.Group)
	AdvancedOptions(group declare.Group)
}

type Config struct {
	// Prog is the program name shown in usage lines.
	Prog string
	// Defaults seeds every flag default.
	Defaults map[string]string
	// ConfigFileName and GlobalDir locate the global settings file, for help only.
	ConfigFileName string
	GlobalDir      string
	RevealAllHelp  bool
	Version        string
}

type Parser struct {
	prog        string
	description string
	version     string
	fs          *pflag.FlagSet
	general     *optionGroup
	groups      []*optionGroup

	defaults    map[string]string
	declared    map[string]struct{}
	shorthands  map[string]struct{}
	withDefault map[string]struct{}

	help           bool
	showVersion    bool
	allHelp        bool
	userConfigPath string
}

// Build creates a parser for one resolution pass. It performs no I/O.
func Build(decl Declarer, cfg Config) (*Parser, error) {
	defaults := make(map[string]string, len(cfg.Defaults))
	for k, v := range cfg.Defaults {
		defaults[k] = v
	}

	p := &Parser{
		prog:        cfg.Prog,
		description: decl.Description() + workflowEpilogue,
		version:     cfg.Version,
		defaults:    defaults,
		declared:    map[string]struct{}{},
		shorthands:  map[string]struct{}{"h": {}},
		withDefault: map[string]struct{}{},
	}

	p.fs = pflag.NewFlagSet(cfg.Prog, pflag.ContinueOnError)
	p.fs.SortFlags = false
	p.fs.SetOutput(ioutil.Discard)
	p.fs.Usage = func() {}

	p.general = newOptionGroup(p, "Options", "", false)
	if cfg.Version != "" {
		p.general.fs.BoolVar(&p.showVersion, FlagVersion, false, "show program's version number and exit")
	}
	p.general.fs.BoolVarP(&p.help, FlagHelp, "h", false, "show this help message and exit")

	globalConfigFile := filepath.Join(cfg.GlobalDir, cfg.ConfigFileName)
	p.general.fs.StringVar(&p.userConfigPath, FlagConfig, defaults[UserConfigKey],
		fmt.Sprintf("provide a configuration file to override defaults in global config file (%s)", globalConfigFile))
	p.general.fs.BoolVar(&p.allHelp, FlagAllHelp, false, "show all extended/hidden options")

	frequent, err := p.buildGroup(frequentTitle, "", false, decl.FrequentOptions)
	if err != nil {
		return nil, err
	}

	advanced, anyHelp, err := p.buildAdvancedGroup(cfg.RevealAllHelp, decl.AdvancedOptions)
	if err != nil {
		return nil, err
	}
	if !anyHelp {
		advanced.title += hiddenSuffix
		advanced.description = ""
	}

	p.groups = []*optionGroup{frequent, advanced}
	for _, g := range append([]*optionGroup{p.general}, p.groups...) {
		p.fs.AddFlagSet(g.fs)
	}
	return p, nil
}

func (p *Parser) buildGroup(title, description string, suppressDefaulted bool, fill func(declare.Group)) (*optionGroup, error) {
	g := newOptionGroup(p, title, description, suppressDefaulted)
	fill(g)
	if g.err != nil {
		return nil, g.err
	}
	return g, nil
}

// buildAdvancedGroup also reports whether any advanced flag kept its help text.
func (p *Parser) buildAdvancedGroup(revealAllHelp bool, fill func(declare.Group)) (*optionGroup, bool, error) {
	g, err := p.buildGroup(advancedTitle, advancedHelp, !revealAllHelp, fill)
	if err != nil {
		return nil, false, err
	}
	return g, g.anyHelp, nil
}

// Parse parses args, which must not include the program name.
func (p *Parser) Parse(args []string) error {
	return p.fs.Parse(args)
}

func (p *Parser) HelpRequested() bool    { return p.help }
func (p *Parser) VersionRequested() bool { return p.showVersion }
func (p *Parser) AllHelp() bool          { return p.allHelp }
func (p *Parser) UserConfigPath() string { return p.userConfigPath }

// Args returns the positional arguments left after parsing.
func (p *Parser) Args() []string {
	return p.fs.Args()
}

// Values returns the defaults overlaid with every flag set on the command
// line. Parser control flags are not included.
func (p *Parser) Values() map[string]string {
	values := make(map[string]string, len(p.defaults))
	for k, v := range p.defaults {
		values[k] = v
	}
	delete(values, UserConfigKey)

	p.fs.VisitAll(func(f *pflag.Flag) {
		if _, ok := reservedFlags[f.Name]; ok || !f.Changed {
			return
		}
		values[f.Name] = valueString(f)
	})
	return values
}

// IsHidden reports whether the help text of a flag is suppressed.
func (p *Parser) IsHidden(name string) bool {
	f := p.fs.Lookup(name)
	return f != nil && f.Hidden
}
