package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

func (p *Parser) usageLine() string {
	return fmt.Sprintf("Usage: %s [options]", p.prog)
}

// PrintUsage writes the one-line usage summary.
func (p *Parser) PrintUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n", p.usageLine())
}

// PrintHelp writes the usage line, the workflow description and every group
// with at least one visible flag or a description.
func (p *Parser) PrintHelp(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n\n", p.usageLine())
	if strings.TrimSpace(p.description) != "" {
		_, _ = fmt.Fprintf(w, "%s\n", strings.Trim(p.description, "\n"))
		_, _ = fmt.Fprint(w, "\n")
	}

	for _, g := range append([]*optionGroup{p.general}, p.groups...) {
		p.printGroup(w, g)
	}
}

func (p *Parser) PrintVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n", p.version)
}

// Error writes msg the way command-line mistakes are reported.
func (p *Parser) Error(w io.Writer, msg string) {
	p.PrintUsage(w)
	_, _ = fmt.Fprintf(w, "\n%s: error: %s\n", p.prog, msg)
}

func (p *Parser) printGroup(w io.Writer, g *optionGroup) {
	_, _ = fmt.Fprintf(w, "%s:\n", g.title)
	if g.description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n\n", g.description)
	}

	g.fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		p.printFlag(w, f)
	})
	_, _ = fmt.Fprint(w, "\n")
}

func (p *Parser) printFlag(w io.Writer, f *pflag.Flag) {
	var s string
	if f.Shorthand != "" {
		s = fmt.Sprintf("  -%s, --%s", f.Shorthand, f.Name)
	} else {
		s = fmt.Sprintf("  --%s", f.Name)
	}

	name, usage := pflag.UnquoteUsage(f)
	if len(name) > 0 {
		s += " " + name
	}
	s += "\n    \t"
	s += strings.Replace(usage, "\n", "\n    \t", -1)

	if _, ok := p.withDefault[f.Name]; ok {
		if f.Value.Type() == "string" {
			s += fmt.Sprintf(" (default %q)", f.DefValue)
		} else {
			s += fmt.Sprintf(" (default %v)", f.DefValue)
		}
	}
	_, _ = fmt.Fprint(w, s, "\n")
}
