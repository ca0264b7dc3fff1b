package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"zedc/internal/stdlib"
	"zedc/report"

	"github.com/ComedicChimera/olive"
)

// execInstallStd copies the bundled standard library into $ZED_PATH. The
// standard library's own content is out of the core's scope (spec.md
// §1); this subcommand only ever moves bytes onto disk for later
// `@include "std/...";` resolution to find.
func execInstallStd(result *olive.ArgParseResult) {
	root := zedStdlibRoot()
	force := result.HasFlag("force")

	err := fs.WalkDir(stdlib.FS, "std", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(root, path), 0o755)
		}

		dest := filepath.Join(root, path)
		if !force {
			if _, statErr := os.Stat(dest); statErr == nil {
				return nil
			}
		}

		data, err := stdlib.FS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0o644)
	})
	if err != nil {
		report.ReportFatal("installing standard library failed: %s", err.Error())
		return
	}

	fmt.Println("installed standard library to " + root)
}
