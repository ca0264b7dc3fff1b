package report

import (
	"fmt"
	"os"
)

// LocalCompileError is a compilation error raised in a context where the
// source unit is already known by the eventual handler and so does not
// need to be threaded through every return value. It is propagated by
// panic and recovered at the translation-unit boundary (CatchErrors, or
// driver.CompileUnit's own deferred recover).
type LocalCompileError struct {
	Message string
	Span    *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise creates and panics with a new local compile error. Every parsing
// and code generation function that detects a defect calls Raise instead
// of returning an error value; the panic unwinds directly to the nearest
// recover point, which is exactly one per translation unit (in the core,
// driver.CompileUnit's deferred recover).
func Raise(span *TextSpan, msg string, args ...interface{}) {
	panic(&LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span})
}

// ReportICE reports an internal compiler error: a condition that is never
// supposed to happen regardless of the input program. Always displayed
// regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))
	os.Exit(2)
}

// ReportFatal reports a fatal, non-source error: bad configuration,
// missing tools, unreadable paths. Stops the whole compilation process.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error anchored to a source
// unit. absPath is used to read back the offending source line; reprPath
// is the path shown to the user.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true
		displayCompileMessage("error", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning; arguments mirror
// ReportCompileError.
func ReportCompileWarning(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage("warning", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error (I/O failures
// encountered outside of lexing/parsing) against a source unit.
func ReportStdError(reprPath string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true
		displayStdError(reprPath, err)
	}
}

// AnyErrors returns whether any compile error has been reported so far.
func AnyErrors() bool {
	return rep.isErr
}

// CatchErrors recovers from a panic raised by Raise (or any other panic)
// during compilation of one translation unit and converts it into a
// reported diagnostic. It must always be deferred, once per unit.
func CatchErrors(absPath, reprPath string) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case *LocalCompileError:
			ReportCompileError(absPath, reprPath, v.Span, "%s", v.Message)
		case error:
			ReportStdError(reprPath, v)
		default:
			ReportFatal("%v", x)
		}
	}
}
