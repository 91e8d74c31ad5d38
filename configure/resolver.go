package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/zhangel/go-configure/configure/internal/parser"
	"github.com/zhangel/go-configure/internal"
	"github.com/zhangel/go-configure/lifecycle"
	"github.com/zhangel/go-configure/log/logger"
	"github.com/zhangel/go-configure/settings"
)

const settingsFileSuffix = ".ini"

type resolver struct {
	section        string
	decl           Declaration
	opts           *Options
	prog           string
	globalDir      string
	configFileName string
	logger         logger.Logger
}

func newResolver(primarySection string, decl Declaration, opt ...Option) (*resolver, error) {
	if decl == nil {
		return nil, errors.New("no workflow declaration given")
	}
	if primarySection == "" {
		return nil, errors.New("empty primary section name")
	}

	opts, err := generateOptions(opt...)
	if err != nil {
		return nil, err
	}

	dir, base, err := locateProgram(opts.programPath)
	if err != nil {
		return nil, err
	}

	return &resolver{
		section:        primarySection,
		decl:           decl,
		opts:           opts,
		prog:           base,
		globalDir:      dir,
		configFileName: base + settingsFileSuffix,
		logger:         opts.logger.WithField("section", primarySection),
	}, nil
}

// Resolve merges the workflow defaults, the global settings file, the
// optional --config settings file and the command line, in that order of
// precedence. It returns the resolved options and a snapshot of every
// settings section.
//
// Help, version and usage outcomes are written to the configured outputs and
// reported as *ExitError. Missing or malformed settings files yield
// *ConfigFileError. Errors from broken declarations are returned as is.
func Resolve(primarySection string, decl Declaration, opt ...Option) (*RunOptions, settings.Snapshot, error) {
	r, err := newResolver(primarySection, decl, opt...)
	if err != nil {
		return nil, nil, err
	}
	return r.resolve()
}

// GetRunOptions is Resolve for command-line programs: every error terminates
// the process with the matching exit status.
func GetRunOptions(primarySection string, decl Declaration, opt ...Option) (*RunOptions, settings.Snapshot) {
	r, err := newResolver(primarySection, decl, opt...)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		lifecycle.Exit(1)
		return nil, nil
	}

	runOpts, snapshot, err := r.resolve()
	if err == nil {
		return runOpts, snapshot
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		r.logger.Errorf("resolve run options failed, err = %v", err)
		_, _ = fmt.Fprintf(r.opts.errOutput, "%s: error: %v\n", r.prog, err)
	}
	lifecycle.Exit(ExitCode(err))
	return nil, nil
}

func (r *resolver) resolve() (*RunOptions, settings.Snapshot, error) {
	snapshot := settings.New()
	snapshot.Section(r.section)
	snapshot.Merge(settings.Snapshot{r.section: internal.StringifyMap(r.decl.Defaults())})
	r.logger.Debugf("defaults layer has %d keys", len(snapshot[r.section]))

	globalPath := filepath.Join(r.globalDir, r.configFileName)
	global, err := settings.ReadIfExists(globalPath)
	if err != nil {
		return nil, nil, &ConfigFileError{Path: globalPath, Err: err}
	}
	r.logger.WithField("path", globalPath).Debugf("global settings layer has %d sections", len(global))
	snapshot.Merge(global)

	p, err := r.parse(snapshot, 1, global, globalPath)
	if err != nil {
		return nil, nil, err
	}

	if userPath := p.UserConfigPath(); userPath != "" {
		if !settings.IsRegularFile(userPath) {
			return nil, nil, &ConfigFileError{Path: userPath, Err: os.ErrNotExist}
		}

		user, err := settings.Read(userPath)
		if err != nil {
			return nil, nil, &ConfigFileError{Path: userPath, Err: err}
		}
		snapshot.Merge(user)

		// The command line is parsed again so that flag defaults reflect
		// the user settings file.
		r.logger.WithField("path", userPath).Infof("user settings layer has %d sections, reparsing", len(user))
		if p, err = r.parse(snapshot, 2, user, userPath); err != nil {
			return nil, nil, err
		}
	}

	if p.AllHelp() {
		full, err := r.build(snapshot, true)
		if err != nil {
			return nil, nil, err
		}
		full.PrintHelp(r.opts.output)
		return nil, nil, &ExitError{Code: 2}
	}

	if args := p.Args(); len(args) > 0 {
		p.PrintHelp(r.opts.output)
		return nil, nil, &ExitError{Code: 2, Err: &UsageError{Msg: fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " "))}}
	}

	parsed := p.Values()
	runOpts := newRunOptions(p.Values())
	runOpts.UserConfigPath = p.UserConfigPath()
	runOpts.IsAllHelp = p.AllHelp()

	if err := r.decl.Sanitize(runOpts); err != nil {
		return nil, nil, r.validationFailed(p, err)
	}

	r.commit(snapshot, parsed, runOpts)

	if err := r.decl.CheckCompleteness(runOpts); err != nil {
		return nil, nil, r.validationFailed(p, err)
	}

	return runOpts, snapshot, nil
}

// commit writes the sanitized options into the primary section. Options
// removed by Sanitize are removed from the section as well.
func (r *resolver) commit(snapshot settings.Snapshot, parsed map[string]string, runOpts *RunOptions) {
	primary := snapshot.Section(r.section)
	for k := range parsed {
		if !runOpts.Has(k) {
			delete(primary, k)
		}
	}
	for k, v := range runOpts.Values {
		primary[k] = v
	}
	if runOpts.UserConfigPath != "" {
		primary[parser.UserConfigKey] = runOpts.UserConfigPath
	}
}

func (r *resolver) build(snapshot settings.Snapshot, revealAllHelp bool) (*parser.Parser, error) {
	p, err := parser.Build(r.decl, parser.Config{
		Prog:           r.prog,
		Defaults:       snapshot.Section(r.section),
		ConfigFileName: r.configFileName,
		GlobalDir:      r.globalDir,
		RevealAllHelp:  revealAllHelp,
		Version:        r.opts.version,
	})
	if err != nil {
		var defErr *parser.DefaultValueError
		if errors.As(err, &defErr) {
			return nil, errors.Wrapf(err, "settings section [%s]", r.section)
		}
		return nil, errors.Wrap(err, "invalid workflow declaration")
	}
	return p, nil
}

// parse builds a parser from snapshot and parses the command line. A value
// of the primary section that its flag cannot parse is reported against
// layerPath when it comes from layer, the settings file merged last.
func (r *resolver) parse(snapshot settings.Snapshot, pass int, layer settings.Snapshot, layerPath string) (*parser.Parser, error) {
	p, err := r.build(snapshot, false)
	if err != nil {
		var defErr *parser.DefaultValueError
		if errors.As(err, &defErr) {
			if _, ok := layer.Get(r.section, defErr.Name); ok {
				return nil, &ConfigFileError{Path: layerPath, Err: err}
			}
		}
		return nil, err
	}

	r.logger.WithField("pass", pass).Debugf("parsing %d arguments", len(r.opts.args))
	if err := p.Parse(r.opts.args); err != nil {
		p.Error(r.opts.errOutput, err.Error())
		return nil, &ExitError{Code: 2, Err: &UsageError{Msg: err.Error()}}
	}

	if p.HelpRequested() {
		p.PrintHelp(r.opts.output)
		return nil, &ExitError{Code: 0}
	}
	if p.VersionRequested() {
		p.PrintVersion(r.opts.output)
		return nil, &ExitError{Code: 0}
	}
	return p, nil
}

// validationFailed prints full help when the program was started without
// arguments and the validation message otherwise. Errors other than
// *ValidationError are returned unchanged.
func (r *resolver) validationFailed(p *parser.Parser, err error) error {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	r.logger.Warnf("validation failed, err = %v", err)
	if len(r.opts.args) == 0 {
		p.PrintHelp(r.opts.output)
	} else {
		p.Error(r.opts.errOutput, validationErr.Msg)
	}
	return &ExitError{Code: 2, Err: err}
}

// locateProgram returns the absolute directory and base name of the
// launching program. A bare program name found through PATH is resolved
// with os.Executable.
func locateProgram(path string) (dir, base string, err error) {
	if path == "" || !strings.ContainsRune(path, os.PathSeparator) && !strings.ContainsRune(path, '/') {
		exe, err := os.Executable()
		if err != nil {
			if path == "" {
				return "", "", errors.Wrap(err, "locate launching program")
			}
		} else {
			path = exe
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "locate launching program %q", path)
	}
	return filepath.Dir(abs), filepath.Base(abs), nil
}
