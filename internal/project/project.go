// Package project loads the `zed-mod.toml` descriptor that names a Zed
// project: its module name, the standard-library version it was built
// against, and the executable it produces. Grounded on chai's
// `depm.LoadModule`/`tomlModule` pattern, reduced to the handful of
// fields a single-executable build actually needs.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ModuleFileName is the name of a Zed project's descriptor file, sought
// in the project root directory.
const ModuleFileName = "zed-mod.toml"

// tomlDescriptor mirrors the on-disk shape of a zed-mod.toml file.
type tomlDescriptor struct {
	Name          string `toml:"name"`
	StdlibVersion string `toml:"stdlib-version"`
	Executable    string `toml:"executable"`
	ShouldCache   bool   `toml:"caching"`
}

// Descriptor is a loaded and validated project descriptor.
type Descriptor struct {
	// AbsPath is the project root directory (the descriptor file's
	// enclosing directory), not the descriptor file itself.
	AbsPath string

	Name          string
	StdlibVersion string
	// Executable is the name of the output binary; defaults to Name if
	// the descriptor doesn't set one.
	Executable string
	// ShouldCache mirrors chai's caching flag, carried through here even
	// though this compiler's single-pass emitter has nothing to cache;
	// only the CLI's build banner reads it.
	ShouldCache bool
}

// Load reads and validates the zed-mod.toml descriptor in the directory
// abspath. abspath must already be an absolute, canonical path.
func Load(abspath string) (*Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(abspath, ModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s in %s: %w", ModuleFileName, abspath, err)
	}

	var raw tomlDescriptor
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed %s in %s: %w", ModuleFileName, abspath, err)
	}

	desc := &Descriptor{
		AbsPath:       abspath,
		Name:          raw.Name,
		StdlibVersion: raw.StdlibVersion,
		Executable:    raw.Executable,
		ShouldCache:   raw.ShouldCache,
	}
	if desc.Executable == "" {
		desc.Executable = desc.Name
	}

	if err := validate(desc); err != nil {
		return nil, err
	}
	return desc, nil
}

func validate(desc *Descriptor) error {
	if desc.Name == "" {
		return fmt.Errorf("%s: missing project name", desc.AbsPath)
	}
	if !isValidIdentifier(desc.Name) {
		return fmt.Errorf("%s: project name %q must be a valid identifier", desc.AbsPath, desc.Name)
	}
	return nil
}

// isValidIdentifier reports whether idstr could name a Zed identifier:
// a letter or underscore followed by letters, digits, or underscores.
func isValidIdentifier(idstr string) bool {
	first := idstr[0]
	if !(first == '_' || 'a' <= first && first <= 'z' || 'A' <= first && first <= 'Z') {
		return false
	}
	for _, c := range idstr[1:] {
		if c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			continue
		}
		return false
	}
	return true
}
