// Package logging is the CLI's colored presentation layer over the
// core's plain-text `report` diagnostics: a startup banner, a phase
// spinner for "Lexing / Parsing / Generating / Assembling / Linking",
// and a closing summary line. Grounded on chai's `src/logging/display.go`
// (`displayCompileHeader`, `displayBeginPhase`/`displayEndPhase`,
// `displayCompilationFinished`). Nothing in the core imports this
// package; report's own rendering stays deterministic plain text so
// diagnostics are stable to grep and diff regardless of terminal.
package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	successFG = pterm.FgLightGreen
	successBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnFG    = pterm.FgYellow
	errorFG   = pterm.FgRed
	errorBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// PrintHeader prints the compiler banner shown before a build starts.
func PrintHeader(target string, caching bool) {
	fmt.Print("zedc ")
	successFG.Print("-- target: ")
	successFG.Println(target)

	if caching {
		fmt.Println("compiling using cache")
	}
}

// maxPhaseLength pads every phase label to the width of the longest one
// so the spinner text doesn't jitter horizontally between phases.
const maxPhaseLength = len("Generating")

// Phase tracks one running compilation phase's spinner and start time.
type Phase struct {
	name    string
	start   time.Time
	spinner *pterm.SpinnerPrinter
}

// BeginPhase starts a spinner for the named phase ("Lexing", "Parsing",
// "Generating", "Assembling", "Linking").
func BeginPhase(name string) *Phase {
	p := &Phase{name: name, start: time.Now()}

	label := name + "..." + strings.Repeat(" ", maxPhaseLength-len(name)+2)
	p.spinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(successFG))
	p.spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: successBG, Text: "Done"},
	}
	p.spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorBG, Text: "Fail"},
	}
	p.spinner.Start(label)

	return p
}

// Done marks the phase finished, printing whether it succeeded and how
// long it took.
func (p *Phase) Done(success bool) {
	if p.spinner == nil {
		return
	}

	padded := p.name + strings.Repeat(" ", maxPhaseLength-len(p.name)+2)
	if success {
		p.spinner.Success(padded, fmt.Sprintf("(%.3fs)", time.Since(p.start).Seconds()))
	} else {
		p.spinner.Fail(padded)
	}
	p.spinner = nil
}

// PrintSummary prints the closing line of a build: overall success and
// the error/warning tally.
func PrintSummary(errorCount, warningCount int) {
	fmt.Print("\n")

	if errorCount == 0 {
		successFG.Print("All done! ")
	} else {
		errorFG.Print("Build failed. ")
	}

	fmt.Print("(")
	printCount(errorCount, "error", "errors", errorFG)
	fmt.Print(", ")
	printCount(warningCount, "warning", "warnings", warnFG)
	fmt.Println(")")
}

func printCount(n int, singular, plural string, fg pterm.Color) {
	if n == 0 {
		successFG.Print(0)
		fmt.Print(" " + plural)
		return
	}

	fg.Print(n)
	if n == 1 {
		fmt.Print(" " + singular)
	} else {
		fmt.Print(" " + plural)
	}
}
