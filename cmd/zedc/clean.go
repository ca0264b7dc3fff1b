package main

import (
	"fmt"
	"os"
	"path/filepath"

	"zedc/report"

	"github.com/ComedicChimera/olive"
)

// execClean removes the build/ artifacts directory in the current
// project.
func execClean(result *olive.ArgParseResult) {
	root := projectPath(result)
	buildDir := filepath.Join(root, buildDirName)

	if _, err := os.Stat(buildDir); os.IsNotExist(err) {
		fmt.Println("nothing to clean")
		return
	}

	if err := os.RemoveAll(buildDir); err != nil {
		report.ReportFatal("couldn't remove %s: %s", buildDir, err.Error())
		return
	}

	fmt.Println("removed " + buildDir)
}
