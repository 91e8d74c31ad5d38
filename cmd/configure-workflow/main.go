package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zhangel/go-configure/configure"
	"github.com/zhangel/go-configure/lifecycle"
	"github.com/zhangel/go-configure/log"
)

var version = "0.1.0"

func main() {
	opts, snapshot := configure.GetRunOptions(primarySection, &germlineWorkflow{version: version},
		configure.WithVersion(version))

	if err := checkInputs(opts); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: error: %v\n", filepath.Base(os.Args[0]), err)
		lifecycle.Exit(2)
	}

	if l, err := log.NewConsoleLogger(false, log.WithLevelName(opts.String("logLevel")))(); err != nil {
		log.Warnf("create console logger failed, keep default logger, err = %v", err)
	} else {
		log.SetDefaultLogger(l)
	}
	logger := log.DefaultLogger().WithField("runDir", opts.String("runDir"))

	lifecycle.OnFinalize(func(ctx context.Context) {
		logger.Debugf("configuration finished")
	}, lifecycle.WithName("configure-workflow"))

	path, err := writeRunSettings(opts.String("runDir"), snapshot)
	if err != nil {
		logger.Fatalf("write run settings failed, err = %v", err)
	}

	logger.Infof("workflow settings written to %s", path)
	fmt.Printf("\nSuccessfully created workflow run settings.\n"+
		"To execute the workflow, run the workflow runner with:\n%s\n\n", path)
	lifecycle.Exit(0)
}
