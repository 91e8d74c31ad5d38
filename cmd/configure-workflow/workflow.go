package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/zhangel/go-configure/configure"
	"github.com/zhangel/go-configure/declare"
	"github.com/zhangel/go-configure/log/level"
	"github.com/zhangel/go-configure/settings"
)

const (
	primarySection = "germlineWorkflow"
	runScriptName  = "runWorkflow.ini"
)

// germlineWorkflow declares the options of a small-variant germline calling
// workflow.
type germlineWorkflow struct {
	version string
}

func (w *germlineWorkflow) Description() string {
	return "Version: " + w.version + "\n\n" +
		"This script configures a germline small variant calling workflow."
}

func (w *germlineWorkflow) FrequentOptions(group declare.Group) {
	group.Flags(
		declare.Flag{Name: "referenceFasta", Kind: declare.String,
			Description: "samtools-indexed reference fasta file [required]"},
		declare.Flag{Name: "bam", Kind: declare.StringList,
			Description: "sample BAM or CRAM file. May be specified more than once, at least one file is required"},
		declare.Flag{Name: "runDir", Kind: declare.String,
			Description: "name of directory to be created where all workflow scripts and output will be written"},
		declare.Flag{Name: "exome", Kind: declare.Bool,
			Description: "set options for exome or other targeted input"},
		declare.Flag{Name: "callRegions", Kind: declare.String,
			Description: "optionally provide a bgzip-compressed/tabix-indexed BED file containing the set of regions to call"},
	)
}

func (w *germlineWorkflow) AdvancedOptions(group declare.Group) {
	group.Flags(
		declare.Flag{Name: "scanSizeMb", Kind: declare.Int,
			Description: "maximum sequence region size (in megabases) scanned by each task during genome variant calling"},
		declare.Flag{Name: "minMapq", Kind: declare.Int,
			Description: "minimum mapping quality of reads used for calling"},
		declare.Flag{Name: "maxIndelSize", Kind: declare.Int,
			Description: "maximum indel size to be considered for calling"},
		declare.Flag{Name: "taskTimeout", Kind: declare.Duration,
			Description: "abort a workflow task running longer than this, eg. 12h or 1d"},
		declare.Flag{Name: "retainTempFiles", Kind: declare.Bool,
			Description: "keep all temporary files (for workflow debugging)"},
		declare.Flag{Name: "logLevel", Kind: declare.String,
			Description: "log level of the configuration step, one of trace, debug, info, warn, error"},
	)
}

func (w *germlineWorkflow) Defaults() map[string]interface{} {
	return map[string]interface{}{
		"runDir":          "GermlineWorkflow",
		"scanSizeMb":      12,
		"minMapq":         20,
		"maxIndelSize":    49,
		"taskTimeout":     "24h",
		"retainTempFiles": false,
		"logLevel":        "warn",
	}
}

func (w *germlineWorkflow) Sanitize(opts *configure.RunOptions) error {
	for _, key := range []string{"referenceFasta", "runDir", "callRegions"} {
		if path := opts.String(key); path != "" {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			opts.Set(key, abs)
		}
	}

	if opts.Has("bam") {
		bams := opts.StringList("bam")
		for i, bam := range bams {
			abs, err := filepath.Abs(bam)
			if err != nil {
				return err
			}
			bams[i] = abs
		}
		opts.SetStringList("bam", bams)
	}

	if opts.Int("scanSizeMb") < 1 {
		return configure.ValidationErrorf("scanSizeMb must be at least 1, got '%s'", opts.String("scanSizeMb"))
	}
	if opts.Int("minMapq") < 0 {
		return configure.ValidationErrorf("minMapq must not be negative, got '%s'", opts.String("minMapq"))
	}
	if opts.Duration("taskTimeout") <= 0 {
		return configure.ValidationErrorf("invalid taskTimeout '%s'", opts.String("taskTimeout"))
	}
	if _, err := level.ParseLevel(opts.String("logLevel")); err != nil {
		return configure.ValidationErrorf("invalid logLevel '%s'", opts.String("logLevel"))
	}
	if opts.Bool("exome") && opts.Has("callRegions") {
		opts.Set("scanSizeMb", "1")
	}
	return nil
}

func (w *germlineWorkflow) CheckCompleteness(opts *configure.RunOptions) error {
	if opts.String("referenceFasta") == "" {
		return configure.ValidationErrorf("Must specify a reference fasta file")
	}
	if len(opts.StringList("bam")) == 0 {
		return configure.ValidationErrorf("No sample BAM/CRAM files specified")
	}
	return nil
}

// checkInputs verifies the resolved input files exist and the run directory
// can be created.
func checkInputs(opts *configure.RunOptions) error {
	if ref := opts.String("referenceFasta"); !settings.IsRegularFile(ref) {
		return errors.Errorf("Can't find reference fasta file: '%s'", ref)
	}
	for _, bam := range opts.StringList("bam") {
		if !settings.IsRegularFile(bam) {
			return errors.Errorf("Can't find sample BAM/CRAM file: '%s'", bam)
		}
	}

	if info, err := os.Stat(opts.String("runDir")); err == nil && !info.IsDir() {
		return errors.Errorf("Run directory '%s' exists and is not a directory", opts.String("runDir"))
	}
	return nil
}

// writeRunSettings creates the run directory and stores the resolved
// settings in it.
func writeRunSettings(runDir string, snapshot settings.Snapshot) (string, error) {
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(runDir, runScriptName)
	return path, settings.Write(path, snapshot)
}
