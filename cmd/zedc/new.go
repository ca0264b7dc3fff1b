package main

import (
	"fmt"
	"os"
	"path/filepath"

	"zedc/internal/logging"
	"zedc/report"

	"github.com/ComedicChimera/olive"
)

const newModuleTemplate = `name = %q
stdlib-version = "0.1.0"
`

const newMainTemplate = `@include "std/io.zed";

fn main() {
    println(1);
    return 0;
}

main();
`

// execNew scaffolds a fresh project directory: a zed-mod.toml descriptor
// and a src/main.zed entry point. Grounded on chai's `mods.InitModule`.
func execNew(result *olive.ArgParseResult) {
	rawPath, _ := result.PrimaryArg()
	abs, err := filepath.Abs(rawPath)
	if err != nil {
		report.ReportFatal("bad project path: %s", err.Error())
		return
	}

	if err := os.MkdirAll(filepath.Join(abs, "src"), 0o755); err != nil {
		report.ReportFatal("couldn't create project directory: %s", err.Error())
		return
	}

	name := filepath.Base(abs)
	modText := fmt.Sprintf(newModuleTemplate, name)
	if err := os.WriteFile(filepath.Join(abs, "zed-mod.toml"), []byte(modText), 0o644); err != nil {
		report.ReportFatal("couldn't write zed-mod.toml: %s", err.Error())
		return
	}

	mainPath := filepath.Join(abs, "src", "main.zed")
	if err := os.WriteFile(mainPath, []byte(newMainTemplate), 0o644); err != nil {
		report.ReportFatal("couldn't write src/main.zed: %s", err.Error())
		return
	}

	logging.PrintHeader(name, false)
	fmt.Printf("created new project %q at %s\n", name, abs)
}
