package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, dir, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ModuleFileName), []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", ModuleFileName, err)
	}
}

func TestLoadValidDescriptor(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `
name = "hello"
stdlib-version = "0.1.0"
caching = true
`)

	desc, err := Load(dir)
	if err != nil {
		t.Fatalf("expected a valid descriptor to load, got: %v", err)
	}
	if desc.Name != "hello" {
		t.Errorf("expected name %q, got %q", "hello", desc.Name)
	}
	if desc.Executable != "hello" {
		t.Errorf("expected executable to default to name, got %q", desc.Executable)
	}
	if !desc.ShouldCache {
		t.Error("expected caching to be true")
	}
}

func TestLoadExplicitExecutableName(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `
name = "hello"
executable = "hello-bin"
`)

	desc, err := Load(dir)
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if desc.Executable != "hello-bin" {
		t.Errorf("expected explicit executable name to win, got %q", desc.Executable)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a missing zed-mod.toml")
	}
}

func TestLoadMissingNameFails(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `stdlib-version = "0.1.0"`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a missing project name")
	}
}

func TestLoadInvalidIdentifierNameFails(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name = "123-bad"`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for a non-identifier project name")
	}
}

func TestLoadMalformedTomlFails(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name = `)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for malformed toml")
	}
}
