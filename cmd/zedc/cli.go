package main

import (
	"os"
	"path/filepath"

	"zedc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the entry point for the zedc CLI.
func Execute() {
	cli := olive.NewCLI("zedc", "zedc is a tool for managing Zed projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	newCmd := cli.AddSubcommand("new", "scaffold a new project", true)
	newCmd.AddPrimaryArg("project-path", "the directory to create the project in", true)

	buildCmd := cli.AddSubcommand("build", "compile the project in the current directory", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project to build", false)

	runCmd := cli.AddSubcommand("run", "build and run the project", true)
	runCmd.AddPrimaryArg("project-path", "the path to the project to build", false)

	cli.AddSubcommand("clean", "remove build artifacts", true)

	installStdCmd := cli.AddSubcommand("install-std", "install the bundled standard library into $ZED_PATH", true)
	installStdCmd.AddFlag("force", "f", "overwrite files already present at $ZED_PATH")

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
		return
	}

	loglevel := parseLogLevel(result.Arguments["loglevel"].(string))
	report.InitReporter(loglevel)

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "new":
		execNew(subResult)
	case "build":
		execBuild(subResult)
	case "run":
		execRun(subResult)
	case "clean":
		execClean(subResult)
	case "install-std":
		execInstallStd(subResult)
	}
}

func parseLogLevel(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

// projectPath resolves the optional project-path primary argument to an
// absolute path, defaulting to the current working directory.
func projectPath(result *olive.ArgParseResult) string {
	if raw, ok := result.PrimaryArg(); ok && raw != "" {
		abs, err := filepath.Abs(raw)
		if err != nil {
			report.ReportFatal("bad project path: %s", err.Error())
		}
		return abs
	}

	wd, err := os.Getwd()
	if err != nil {
		report.ReportFatal("couldn't determine the working directory: %s", err.Error())
	}
	return wd
}
