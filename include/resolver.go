// Package include implements the include graph: resolving `@include`
// path text to a canonical source-unit id, classifying it as a standard
// library or user include, and detecting cycles across a chain of
// directives (spec.md §4.3).
package include

import (
	"path/filepath"
	"strings"

	"zedc/source"
)

const stdlibPrefix = "std/"

// Resolver tracks the loading/loaded state of the include graph for one
// compilation. It is shared by every unit's parser instance.
type Resolver struct {
	mgr *source.Manager

	// loading holds ids whose parse is currently in progress; loaded
	// holds ids that have completed. A directive naming an id in
	// loading is a cycle; one naming an id in loaded is a no-op
	// (spec.md's Include graph invariant).
	loading map[string]string // id -> repr path, for cycle diagnostics
	loaded  map[string]bool
}

// NewResolver creates a resolver bound to a source manager.
func NewResolver(mgr *source.Manager) *Resolver {
	return &Resolver{
		mgr:     mgr,
		loading: make(map[string]string),
		loaded:  make(map[string]bool),
	}
}

// Resolve turns the text of an `@include "…";` directive into an absolute
// path, classifying it as a system include (a `std/`-prefixed path,
// resolved against the manager's configured stdlib root) or a user
// include (resolved relative to fromDir, the including unit's directory).
func (r *Resolver) Resolve(pathText, fromDir string) string {
	if strings.HasPrefix(pathText, stdlibPrefix) {
		rest := strings.TrimPrefix(pathText, stdlibPrefix)
		return filepath.Join(r.mgr.StdlibRoot, rest)
	}
	return filepath.Join(fromDir, pathText)
}

// Status reports what the parser should do about an include directive
// once its target has been resolved to a canonical id.
type Status int

const (
	// StatusLoad means the unit is new: mark it loading and proceed to
	// load, lex, and parse it.
	StatusLoad Status = iota
	// StatusSkip means the unit is already fully loaded: the directive
	// is a no-op (spec.md's "expansion is idempotent" invariant).
	StatusSkip
	// StatusCycle means the unit is already loading: this is a circular
	// include.
	StatusCycle
)

// Enter reports how the resolver's caller should handle including id,
// and if the result is StatusLoad, marks id as loading. reprPath is
// recorded so a later cycle diagnostic can name this unit.
func (r *Resolver) Enter(id, reprPath string) Status {
	if r.loaded[id] {
		return StatusSkip
	}
	if _, ok := r.loading[id]; ok {
		return StatusCycle
	}

	r.loading[id] = reprPath
	return StatusLoad
}

// ReprPath returns the repr path recorded for a currently-loading id, for
// cycle diagnostics naming both units.
func (r *Resolver) ReprPath(id string) string {
	return r.loading[id]
}

// Leave moves id from loading to loaded once its parse has completed.
func (r *Resolver) Leave(id string) {
	delete(r.loading, id)
	r.loaded[id] = true
}
