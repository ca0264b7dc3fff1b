// Package source owns loaded source unit text and translates byte offsets
// into human-facing (line, column) positions for diagnostics.
package source

import (
	"os"
	"path/filepath"
	"sort"

	"zedc/report"
)

// Span is the (source-unit id, byte start, byte end) triple carried on
// every token and AST node, per spec.md §3. End is exclusive.
type Span struct {
	UnitID     string
	Start, End int
}

// SpanOver returns the span covering both a and b.
func SpanOver(a, b Span) Span {
	return Span{UnitID: a.UnitID, Start: a.Start, End: b.End}
}

// Unit is a single loaded source file: a stable id, its canonical absolute
// path, its text, and a line-start index computed once on load. A Unit is
// immutable after Load returns.
type Unit struct {
	ID      string
	AbsPath string
	// ReprPath is the path shown to the user in diagnostics: normally the
	// path as given on the command line or in an @include directive.
	ReprPath string
	Text     string

	lineStarts []int
}

// Manager owns every loaded Unit for one compilation, keyed by canonical
// absolute path so that "./foo.zed" and "foo.zed" resolve to the same
// identity (spec.md §4.1).
type Manager struct {
	// StdlibRoot is the compiler-configured standard-library root used to
	// resolve `std/`-prefixed `@include "std/...";` directives. The
	// angle-bracket `@include <path>;` form is not accepted by the lexer
	// or parser. It is read-only after startup (spec.md §5).
	StdlibRoot string

	units map[string]*Unit
}

// NewManager creates an empty source manager rooted at stdlibRoot.
func NewManager(stdlibRoot string) *Manager {
	return &Manager{
		StdlibRoot: stdlibRoot,
		units:      make(map[string]*Unit),
	}
}

// Canonicalize normalizes a path to its identity form.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// Load loads a source unit by path (which may be relative), returning the
// already-loaded Unit if this canonical path was loaded before. reprPath
// is the path to display to the user; if empty, the canonical path is
// used.
func (m *Manager) Load(path, reprPath string) (*Unit, error) {
	abs, err := Canonicalize(path)
	if err != nil {
		return nil, err
	}

	if u, ok := m.units[abs]; ok {
		return u, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	if reprPath == "" {
		reprPath = abs
	}

	u := &Unit{
		ID:       abs,
		AbsPath:  abs,
		ReprPath: reprPath,
		Text:     string(data),
	}
	u.computeLineStarts()

	m.units[abs] = u
	return u, nil
}

// Get returns an already-loaded unit by canonical path, if any.
func (m *Manager) Get(canonicalPath string) (*Unit, bool) {
	u, ok := m.units[canonicalPath]
	return u, ok
}

func (u *Unit) computeLineStarts() {
	u.lineStarts = []int{0}
	for i, c := range u.Text {
		if c == '\n' {
			u.lineStarts = append(u.lineStarts, i+1)
		}
	}
}

// LineCol translates a byte offset into a zero-indexed (line, col) pair
// using binary search over the line-start prefix sum: O(log lines).
func (u *Unit) LineCol(offset int) (line, col int) {
	line = sort.Search(len(u.lineStarts), func(i int) bool {
		return u.lineStarts[i] > offset
	}) - 1

	if line < 0 {
		line = 0
	}

	col = offset - u.lineStarts[line]
	return line, col
}

// ToTextSpan converts a byte-offset Span into the line/col form the report
// package renders diagnostics with. Every call site that raises a
// diagnostic from a Span goes through this so line/col computation stays
// in one place.
func (u *Unit) ToTextSpan(s Span) *report.TextSpan {
	sl, sc := u.LineCol(s.Start)
	el, ec := u.LineCol(s.End)
	return &report.TextSpan{StartLine: sl, StartCol: sc, EndLine: el, EndCol: ec}
}
