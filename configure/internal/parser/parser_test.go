package parser

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangel/go-configure/declare"
)

type testDeclarer struct {
	frequent []declare.Flag
	advanced []declare.Flag
}

func (d *testDeclarer) Description() string { return "Test workflow." }

func (d *testDeclarer) FrequentOptions(group declare.Group) { group.Flags(d.frequent...) }

func (d *testDeclarer) AdvancedOptions(group declare.Group) { group.Flags(d.advanced...) }

func newTestDeclarer() *testDeclarer {
	return &testDeclarer{
		frequent: []declare.Flag{
			{Name: "referenceFasta", Kind: declare.String, Description: "samtools-indexed reference fasta"},
			{Name: "bam", Kind: declare.StringList, Description: "alignment file, may be repeated"},
			{Name: "exome", Kind: declare.Bool, Description: "set options for exome input"},
		},
		advanced: []declare.Flag{
			{Name: "minMapq", Kind: declare.Int, Description: "minimum mapping quality"},
			{Name: "scanSizeMb", Kind: declare.Int, Description: "genome segment size in megabases"},
			{Name: "taskTimeout", Kind: declare.Duration, Description: "per-task timeout"},
		},
	}
}

func build(t *testing.T, defaults map[string]string, reveal bool) *Parser {
	t.Helper()
	p, err := Build(newTestDeclarer(), Config{
		Prog:           "configureWorkflow",
		Defaults:       defaults,
		ConfigFileName: "configureWorkflow.ini",
		GlobalDir:      "/opt/workflow/bin",
		RevealAllHelp:  reveal,
		Version:        "2.9.0",
	})
	require.NoError(t, err)
	return p
}

func help(p *Parser) string {
	buf := &bytes.Buffer{}
	p.PrintHelp(buf)
	return buf.String()
}

func TestHelpSuppressesDefaultedAdvancedOptions(t *testing.T) {
	defaults := map[string]string{"minMapq": "20", "scanSizeMb": "12", "taskTimeout": "2h"}

	p := build(t, defaults, false)
	out := help(p)
	assert.NotContains(t, out, "minimum mapping quality")
	assert.NotContains(t, out, "--scanSizeMb")
	assert.Contains(t, out, "Extended options (hidden):")
	assert.NotContains(t, out, advancedHelp)
	assert.True(t, p.IsHidden("minMapq"))

	p = build(t, defaults, true)
	out = help(p)
	assert.Contains(t, out, "minimum mapping quality")
	assert.Contains(t, out, "--scanSizeMb int")
	assert.Contains(t, out, "(default 12)")
	assert.Contains(t, out, "Extended options:\n  "+advancedHelp)
	assert.False(t, p.IsHidden("minMapq"))
}

func TestAdvancedGroupVisibleWhenAnOptionLacksDefault(t *testing.T) {
	p := build(t, map[string]string{"minMapq": "20", "scanSizeMb": "12"}, false)
	out := help(p)

	assert.Contains(t, out, "Extended options:\n  "+advancedHelp)
	assert.Contains(t, out, "--taskTimeout duration")
	assert.NotContains(t, out, "--minMapq")
}

func TestFrequentOptionsAlwaysShown(t *testing.T) {
	p := build(t, map[string]string{"referenceFasta": "/ref/hg19.fa"}, false)
	out := help(p)

	assert.Contains(t, out, "Usage: configureWorkflow [options]")
	assert.Contains(t, out, "Test workflow.")
	assert.Contains(t, out, "Workflow options:")
	assert.Contains(t, out, `(default "/ref/hg19.fa")`)
	assert.Contains(t, out, "--version")
	assert.Contains(t, out, "-h, --help")
	assert.Contains(t, out, "global config file (/opt/workflow/bin/configureWorkflow.ini)")
	assert.Contains(t, out, "--allHelp")
}

func TestVersionFlagOnlyWithVersion(t *testing.T) {
	p, err := Build(newTestDeclarer(), Config{Prog: "x"})
	require.NoError(t, err)
	assert.NotContains(t, help(p), "--version")
	assert.Error(t, p.Parse([]string{"--version"}))
}

func TestParseSeedsDefaults(t *testing.T) {
	defaults := map[string]string{
		"minMapq":     "20",
		"bam":         "a.bam,b.bam",
		"notDeclared": "kept",
	}
	p := build(t, defaults, false)
	require.NoError(t, p.Parse([]string{"--exome", "--taskTimeout", "1d"}))

	assert.Equal(t, map[string]string{
		"minMapq":     "20",
		"bam":         "a.bam,b.bam",
		"notDeclared": "kept",
		"exome":       "true",
		"taskTimeout": "1d",
	}, p.Values())
	assert.Empty(t, p.Args())
}

func TestParseListReplacesDefault(t *testing.T) {
	p := build(t, map[string]string{"bam": "a.bam,b.bam"}, false)
	require.NoError(t, p.Parse([]string{"--bam", "c.bam", "--bam", "d.bam"}))

	assert.Equal(t, "c.bam,d.bam", p.Values()["bam"])
}

func TestParseControlFlags(t *testing.T) {
	p := build(t, map[string]string{UserConfigKey: "/etc/site.ini"}, false)
	require.NoError(t, p.Parse([]string{"--allHelp", "stray"}))

	assert.True(t, p.AllHelp())
	assert.Equal(t, "/etc/site.ini", p.UserConfigPath())
	assert.Equal(t, []string{"stray"}, p.Args())
	assert.NotContains(t, p.Values(), UserConfigKey)
	assert.NotContains(t, p.Values(), FlagAllHelp)

	p = build(t, nil, false)
	require.NoError(t, p.Parse([]string{"--config", "run.ini", "-h", "--version"}))
	assert.Equal(t, "run.ini", p.UserConfigPath())
	assert.True(t, p.HelpRequested())
	assert.True(t, p.VersionRequested())
}

func TestParseErrors(t *testing.T) {
	p := build(t, nil, false)
	assert.Error(t, p.Parse([]string{"--noSuchFlag"}))

	p = build(t, nil, false)
	assert.Error(t, p.Parse([]string{"--minMapq", "high"}))
}

func TestBuildRejectsBadDefault(t *testing.T) {
	_, err := Build(newTestDeclarer(), Config{Prog: "x", Defaults: map[string]string{"minMapq": "high"}})

	var defErr *DefaultValueError
	require.True(t, errors.As(err, &defErr))
	assert.Equal(t, "minMapq", defErr.Name)
	assert.Equal(t, "high", defErr.Value)
}

func TestBuildRejectsBrokenDeclarations(t *testing.T) {
	cases := []struct {
		name   string
		flags  []declare.Flag
		expect error
	}{
		{"Duplicate", []declare.Flag{{Name: "minMapq", Kind: declare.Int}}, ErrDuplicateFlag},
		{"Reserved", []declare.Flag{{Name: "config", Kind: declare.String}}, ErrReservedFlag},
		{"UnknownKind", []declare.Flag{{Name: "odd", Kind: declare.Kind(99)}}, declare.ErrUnknownKind},
		{"HelpShorthand", []declare.Flag{{Name: "hg", Shorthand: "h", Kind: declare.Bool}}, ErrDuplicateFlag},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newTestDeclarer()
			d.frequent = append(d.frequent, c.flags...)
			_, err := Build(d, Config{Prog: "x"})
			assert.True(t, errors.Is(err, c.expect), "err = %v", err)
		})
	}
}

func TestErrorOutput(t *testing.T) {
	p := build(t, nil, false)
	buf := &bytes.Buffer{}
	p.Error(buf, "Must specify a reference")

	assert.Equal(t, "Usage: configureWorkflow [options]\n\nconfigureWorkflow: error: Must specify a reference\n", buf.String())
}
