package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangel/go-configure/configure"
	"github.com/zhangel/go-configure/log"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/settings"
)

func touch(t *testing.T, path string) {
	require.NoError(t, os.WriteFile(path, []byte{}, 0644))
}

func resolveWorkflow(t *testing.T, dir string, args ...string) (*configure.RunOptions, settings.Snapshot, *bytes.Buffer, error) {
	errOut := &bytes.Buffer{}
	opts, snapshot, err := configure.Resolve(primarySection, &germlineWorkflow{version: "test"},
		configure.WithArgs(args),
		configure.WithProgramPath(filepath.Join(dir, "configure-workflow")),
		configure.WithOutput(&bytes.Buffer{}),
		configure.WithErrorOutput(errOut),
		configure.WithLogger(log.NewStreamLogger(&bytes.Buffer{}, level.None)),
	)
	return opts, snapshot, errOut, err
}

func TestConfigureWorkflow(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "genome.fa")
	bam := filepath.Join(dir, "sample.bam")
	touch(t, ref)
	touch(t, bam)
	runDir := filepath.Join(dir, "run")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "configure-workflow.ini"),
		[]byte("[germlineWorkflow]\nminMapq = 15\n"), 0644))

	opts, snapshot, _, err := resolveWorkflow(t, dir,
		"--referenceFasta", ref, "--bam", bam, "--runDir", runDir, "--exome", "--callRegions", "regions.bed.gz")
	require.NoError(t, err)

	assert.Equal(t, 15, opts.Int("minMapq"))
	assert.Equal(t, 1, opts.Int("scanSizeMb"))
	assert.True(t, filepath.IsAbs(opts.String("callRegions")))
	assert.Equal(t, []string{bam}, opts.StringList("bam"))

	path, err := writeRunSettings(opts.String("runDir"), snapshot)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(runDir, runScriptName), path)

	written, err := settings.Read(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot[primarySection], written[primarySection])
}

func TestConfigureWorkflowRejectsIncompleteOptions(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "genome.fa")
	touch(t, ref)

	_, _, errOut, err := resolveWorkflow(t, dir, "--referenceFasta", ref)
	assert.Equal(t, 2, configure.ExitCode(err))
	assert.Contains(t, errOut.String(), "No sample BAM/CRAM files specified")

	_, _, errOut, err = resolveWorkflow(t, dir, "--referenceFasta", ref, "--logLevel", "loud")
	assert.Equal(t, 2, configure.ExitCode(err))
	assert.Contains(t, errOut.String(), "invalid logLevel 'loud'")
}

func TestCompletenessDoesNotTouchFiles(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "missing.fa")
	bam := filepath.Join(dir, "missing.bam")

	opts, _, _, err := resolveWorkflow(t, dir, "--referenceFasta", ref, "--bam", bam)
	require.NoError(t, err)

	err = checkInputs(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't find reference fasta file: '"+ref+"'")

	touch(t, ref)
	err = checkInputs(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't find sample BAM/CRAM file: '"+bam+"'")

	touch(t, bam)
	assert.NoError(t, checkInputs(opts))

	runDir := filepath.Join(dir, "run")
	touch(t, runDir)
	opts.Set("runDir", runDir)
	assert.Error(t, checkInputs(opts))
}
