package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"zedc/driver"
	"zedc/include"
	"zedc/internal/logging"
	"zedc/internal/project"
	"zedc/report"
	"zedc/source"
	"zedc/util"

	"github.com/ComedicChimera/olive"
)

const buildDirName = "build"

// execBuild loads the project descriptor, discovers every `.zed` file
// under src/, compiles each through the core one file at a time, and (if
// `as`/`ld` are on $PATH) assembles and links the result. This whole
// pipeline sits outside the core's documented scope per spec.md §1;
// the core sees nothing but individual `driver.CompileUnit` calls.
func execBuild(result *olive.ArgParseResult) {
	root := projectPath(result)

	desc, err := project.Load(root)
	if err != nil {
		report.ReportFatal("%s", err.Error())
		return
	}

	logging.PrintHeader(desc.Name, desc.ShouldCache)

	sources, err := discoverSources(filepath.Join(root, "src"))
	if err != nil {
		report.ReportFatal("couldn't discover source files: %s", err.Error())
		return
	}
	if len(sources) == 0 {
		report.ReportFatal("no .zed source files found under src/")
		return
	}

	mainPath := filepath.Join(root, "src", "main.zed")
	if !util.Contains(sources, mainPath) {
		report.ReportFatal("no src/main.zed entry point found")
		return
	}

	buildDir := filepath.Join(root, buildDirName)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		report.ReportFatal("couldn't create build directory: %s", err.Error())
		return
	}

	mgr := source.NewManager(zedStdlibRoot())
	inc := include.NewResolver(mgr)

	phase := logging.BeginPhase("Generating")
	asmPaths := util.Map(sources, func(path string) string {
		asmText, err := driver.CompileUnit(mgr, inc, path, path == mainPath)
		if err != nil {
			phase.Done(false)
			os.Exit(1)
			return ""
		}

		asmPath := filepath.Join(buildDir, unitStem(root, path)+".s")
		if err := os.WriteFile(asmPath, []byte(asmText), 0o644); err != nil {
			report.ReportFatal("couldn't write %s: %s", asmPath, err.Error())
		}
		return asmPath
	})
	phase.Done(true)

	if !hasAssemblerAndLinker() {
		fmt.Println("as/ld not found on $PATH; leaving generated assembly in " + buildDir)
		logging.PrintSummary(0, 0)
		return
	}

	objPaths := assembleAll(buildDir, asmPaths)
	link(buildDir, desc.Executable, objPaths)

	logging.PrintSummary(0, 0)
}

// unitStem turns an absolute source path into a build-artifact stem
// unique within one project: its path relative to the project root with
// each `_` doubled and each path separator written as `_-`, so
// `src/a/b.zed` (`src_-a_-b`) and `src/a_b.zed` (`src_-a__b`) can't
// collide.
func unitStem(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	rel = strings.ReplaceAll(rel, "_", "__")
	return strings.ReplaceAll(rel, string(filepath.Separator), "_-")
}

func discoverSources(srcDir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".zed") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func hasAssemblerAndLinker() bool {
	_, asErr := exec.LookPath("as")
	_, ldErr := exec.LookPath("ld")
	return asErr == nil && ldErr == nil
}

func assembleAll(buildDir string, asmPaths []string) []string {
	return util.Map(asmPaths, func(asmPath string) string {
		objPath := strings.TrimSuffix(asmPath, ".s") + ".o"
		cmd := exec.Command("as", "-o", objPath, asmPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			report.ReportFatal("assembling %s failed: %s\n%s", asmPath, err.Error(), out)
		}
		return objPath
	})
}

func link(buildDir, executable string, objPaths []string) {
	outPath := filepath.Join(buildDir, executable)
	args := append([]string{"-o", outPath}, objPaths...)
	cmd := exec.Command("ld", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		report.ReportFatal("linking failed: %s\n%s", err.Error(), out)
	}
}
