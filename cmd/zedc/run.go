package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"zedc/internal/project"
	"zedc/report"

	"github.com/ComedicChimera/olive"
)

// execRun builds the project, then execs the resulting binary in place,
// inheriting stdio.
func execRun(result *olive.ArgParseResult) {
	root := projectPath(result)
	execBuild(result)

	desc, err := project.Load(root)
	if err != nil {
		report.ReportFatal("%s", err.Error())
		return
	}

	binPath := filepath.Join(root, buildDirName, desc.Executable)
	cmd := exec.Command(binPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		report.ReportFatal("couldn't run %s: %s", binPath, err.Error())
	}
}
