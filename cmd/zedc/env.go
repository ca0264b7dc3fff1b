package main

import (
	"os"

	"zedc/report"
)

// zedStdlibRoot is the directory `@include "std/...";` directives resolve
// against, read from ZED_PATH. Grounded on chai's `initChaiPath`/CHAI_PATH
// convention.
func zedStdlibRoot() string {
	root, ok := os.LookupEnv("ZED_PATH")
	if !ok {
		report.ReportFatal("missing ZED_PATH environment variable")
		return "" // unreachable: ReportFatal exits the process
	}

	info, err := os.Stat(root)
	if err != nil {
		report.ReportFatal("error loading ZED_PATH: %s", err.Error())
		return ""
	}
	if !info.IsDir() {
		report.ReportFatal("error loading ZED_PATH: must point to a directory")
		return ""
	}

	return root
}
