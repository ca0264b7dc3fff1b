// Package driver exposes the core's one operation, spec.md §6's
// `compile_unit(path, is_main) -> assembly_text | diagnostic`, wiring
// together the source manager, include resolver, lexer, parser, and
// code generator for a single translation unit. Grounded on
// `cmd/compiler.go`'s Analyze/Generate phase split, reduced to the
// single-pass shape spec.md §5 describes (each unit is lexed, parsed,
// and emitted to completion before the next; no shared analysis phase
// across units).
package driver

import (
	"fmt"

	"zedc/codegen"
	"zedc/include"
	"zedc/parser"
	"zedc/report"
	"zedc/source"
)

// CompileUnit lexes, parses, and generates assembly for the unit at
// path. isMain marks the unit whose top-level statements become
// `_start`. mgr and inc are shared across every unit in a build so that
// `@include` resolution and the include graph's loading/loaded sets
// span the whole compilation, not just one file (spec.md §4.3).
//
// On success it returns the emitted assembly text and a nil error. On
// the first diagnostic raised anywhere during lexing, parsing, or
// generation, it returns an empty string and a non-nil error — no
// partial assembly is ever returned, per spec.md §7's "first error,
// one message, stop" policy.
//
// Unlike chai's `report.ShouldProceed`, which gates a single
// whole-program build and so can afford to read the reporter's
// cumulative, never-reset `isErr` flag, spec.md §6 has the driver call
// this once per file and report success or failure *per unit* — one
// unit's failure must not shadow the next unit's success. So this
// function recovers its own panic locally rather than asking the
// global reporter whether any error has ever been seen.
func CompileUnit(mgr *source.Manager, inc *include.Resolver, path string, isMain bool) (asmText string, err error) {
	absPath, cerr := source.Canonicalize(path)
	if cerr != nil {
		return "", cerr
	}

	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case *report.LocalCompileError:
				report.ReportCompileError(absPath, path, v.Span, "%s", v.Message)
			case error:
				report.ReportStdError(path, v)
			default:
				report.ReportFatal("%v", r)
			}
			asmText = ""
			err = fmt.Errorf("compilation of %s failed", path)
		}
	}()

	unit, loadErr := mgr.Load(path, path)
	if loadErr != nil {
		return "", loadErr
	}

	prog := parser.New(mgr, inc, unit).ParseProgram()
	asmText = codegen.New(unit, isMain).Generate(prog)
	return asmText, nil
}
