package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zedc/include"
	"zedc/report"
	"zedc/source"
)

func init() {
	report.InitReporter(report.LogLevelSilent)
}

func writeUnit(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestCompileUnitSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "main.zed", `fn f() { return 1; }`)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	inc := include.NewResolver(mgr)

	asmText, err := CompileUnit(mgr, inc, path, false)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(asmText, "f:") {
		t.Errorf("expected emitted assembly to define f, got:\n%s", asmText)
	}
}

func TestCompileUnitReportsFailureForBadUnit(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "bad.zed", `fn f() { return nope; }`)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	inc := include.NewResolver(mgr)

	asmText, err := CompileUnit(mgr, inc, path, false)
	if err == nil {
		t.Fatal("expected an error for a unit referencing an undefined variable")
	}
	if asmText != "" {
		t.Errorf("expected no partial assembly on failure, got:\n%s", asmText)
	}
}

// A failing unit must not poison a later, independently successful unit.
// report.AnyErrors() is a process-wide flag that is never reset, so
// CompileUnit must determine each call's own success from its own
// recovery, not from that global state.
func TestCompileUnitFailureDoesNotPoisonLaterUnit(t *testing.T) {
	dir := t.TempDir()
	badPath := writeUnit(t, dir, "bad.zed", `fn f() { return nope; }`)
	goodPath := writeUnit(t, dir, "good.zed", `fn g() { return 1; }`)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	inc := include.NewResolver(mgr)

	if _, err := CompileUnit(mgr, inc, badPath, false); err == nil {
		t.Fatal("expected the first unit to fail")
	}

	asmText, err := CompileUnit(mgr, inc, goodPath, false)
	if err != nil {
		t.Fatalf("expected the second unit to succeed despite the first unit's failure, got: %v", err)
	}
	if !strings.Contains(asmText, "g:") {
		t.Errorf("expected emitted assembly to define g, got:\n%s", asmText)
	}
}

func TestCompileUnitMainEmitsStart(t *testing.T) {
	dir := t.TempDir()
	path := writeUnit(t, dir, "main.zed", `x = 1;`)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	inc := include.NewResolver(mgr)

	asmText, err := CompileUnit(mgr, inc, path, true)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(asmText, "_start:") {
		t.Errorf("expected _start for the main unit, got:\n%s", asmText)
	}
}

// Two units both including the same file must not fail the second
// unit's compile just because the first unit's CompileUnit call already
// caused the shared resolver to mark that file loaded (spec.md §4.3's
// "expansion is idempotent" invariant, exercised here across separate
// CompileUnit calls sharing one Resolver rather than within one parse).
func TestCompileUnitSharesIncludeStateAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	writeUnit(t, dir, "shared.zed", `fn shared() { return 1; }`)
	aPath := writeUnit(t, dir, "a.zed", `@include "shared.zed"; fn f() { return shared(); }`)
	bPath := writeUnit(t, dir, "b.zed", `@include "shared.zed"; fn g() { return shared(); }`)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	inc := include.NewResolver(mgr)

	if _, err := CompileUnit(mgr, inc, aPath, false); err != nil {
		t.Fatalf("expected a.zed to compile, got: %v", err)
	}
	if _, err := CompileUnit(mgr, inc, bPath, false); err != nil {
		t.Fatalf("expected b.zed to compile using the shared include state, got: %v", err)
	}
}
