package parser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/zhangel/go-configure/declare"
)

// optionGroup collects the flags of one help section. Flags registered here
// are later merged into the parser's flag set.
type optionGroup struct {
	title       string
	description string
	fs          *pflag.FlagSet
	parser      *Parser

	// suppressDefaulted hides the help of flags that already have a default.
	suppressDefaulted bool
	anyHelp           bool
	err               error
}

func newOptionGroup(p *Parser, title, description string, suppressDefaulted bool) *optionGroup {
	fs := pflag.NewFlagSet(title, pflag.ContinueOnError)
	fs.SortFlags = false
	return &optionGroup{
		title:             title,
		description:       description,
		fs:                fs,
		parser:            p,
		suppressDefaulted: suppressDefaulted,
	}
}

func (g *optionGroup) Flags(flags ...declare.Flag) {
	for _, f := range flags {
		if g.err != nil {
			return
		}
		g.err = g.add(f)
	}
}

func (g *optionGroup) add(f declare.Flag) error {
	if f.Name == "" {
		return errors.New("flag declared without a name")
	}
	if _, ok := reservedFlags[f.Name]; ok {
		return errors.Wrapf(ErrReservedFlag, "flag %q", f.Name)
	}
	if _, ok := g.parser.declared[f.Name]; ok {
		return errors.Wrapf(ErrDuplicateFlag, "flag %q", f.Name)
	}
	if f.Shorthand != "" {
		if len(f.Shorthand) > 1 {
			return errors.Errorf("flag %q: shorthand %q is more than one ASCII character", f.Name, f.Shorthand)
		}
		if _, ok := g.parser.shorthands[f.Shorthand]; ok {
			return errors.Wrapf(ErrDuplicateFlag, "shorthand -%s of flag %q", f.Shorthand, f.Name)
		}
	}

	def, hasDefault := g.parser.defaults[f.Name]
	if err := g.register(f, def, hasDefault); err != nil {
		return err
	}

	flag := g.fs.Lookup(f.Name)
	if f.Deprecated {
		flag.Usage = "[DEPRECATED!] " + flag.Usage
	}
	if hasDefault {
		flag.DefValue = valueString(flag)
		g.parser.withDefault[f.Name] = struct{}{}
	}

	if g.suppressDefaulted && hasDefault {
		flag.Hidden = true
	} else {
		g.anyHelp = true
	}

	g.parser.declared[f.Name] = struct{}{}
	if f.Shorthand != "" {
		g.parser.shorthands[f.Shorthand] = struct{}{}
	}
	return nil
}

func (g *optionGroup) register(f declare.Flag, def string, hasDefault bool) error {
	fs := g.fs
	switch f.Kind {
	case declare.String:
		fs.StringP(f.Name, f.Shorthand, "", f.Description)
	case declare.Bool:
		fs.BoolP(f.Name, f.Shorthand, false, f.Description)
	case declare.Int:
		fs.IntP(f.Name, f.Shorthand, 0, f.Description)
	case declare.Int64:
		fs.Int64P(f.Name, f.Shorthand, 0, f.Description)
	case declare.Uint:
		fs.UintP(f.Name, f.Shorthand, 0, f.Description)
	case declare.Float64:
		fs.Float64P(f.Name, f.Shorthand, 0, f.Description)
	case declare.Duration:
		fs.VarP(new(declare.DurationValue), f.Name, f.Shorthand, f.Description)
	case declare.StringList:
		// Seeded at creation: Set on a slice value would make later
		// command-line values append to the default.
		fs.StringSliceP(f.Name, f.Shorthand, splitList(def), f.Description)
		return nil
	default:
		return errors.Wrapf(declare.ErrUnknownKind, "flag %q has kind %d", f.Name, int(f.Kind))
	}

	if !hasDefault {
		return nil
	}
	if err := fs.Lookup(f.Name).Value.Set(def); err != nil {
		return &DefaultValueError{Name: f.Name, Value: def, Err: err}
	}
	return nil
}

// valueString renders a flag value the way it is stored in settings.
func valueString(f *pflag.Flag) string {
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return strings.Join(sv.GetSlice(), ",")
	}
	return f.Value.String()
}

func splitList(v string) []string {
	var result []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
