package declare

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/xhit/go-str2duration/v2"
)

var ErrUnknownKind = errors.New("unknown flag kind")

// Kind selects how a flag parses its argument.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	Int64
	Uint
	Float64
	Duration
	StringList
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Float64:
		return "float64"
	case Duration:
		return "duration"
	case StringList:
		return "strings"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Flag declares one workflow option. A flag never carries its own default:
// defaults come from the settings layers.
type Flag struct {
	Name        string
	Shorthand   string
	Kind        Kind
	Description string
	Deprecated  bool
}

// Group receives the flags of one option group.
type Group interface {
	Flags(flags ...Flag)
}

// DurationValue is a pflag.Value accepting day and week units as well.
type DurationValue time.Duration

func (d *DurationValue) Set(s string) error {
	v, err := str2duration.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = DurationValue(v)
	return nil
}

func (d *DurationValue) String() string { return str2duration.String(time.Duration(*d)) }

func (d *DurationValue) Type() string { return Duration.String() }
