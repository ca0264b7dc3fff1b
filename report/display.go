package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// displayICE prints an internal compiler error banner.
func displayICE(message string) {
	fmt.Printf("internal compiler error: %s\n", message)
	fmt.Print("this is a bug in zedc, not in the compiled program\n\n")
}

// displayFatal prints a fatal, non-source error.
func displayFatal(message string) {
	fmt.Printf("fatal error: %s\n\n", message)
}

// displayCompileMessage renders spec.md's mandated three-line diagnostic
// block: a header naming the message, a location arrow, and a source
// excerpt with a caret underline. If span is nil (no position is
// available) only the header is printed.
func displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	fmt.Printf("%s: %s\n", label, message)

	if span == nil {
		fmt.Println()
		return
	}

	fmt.Printf("  --> %s:%d:%d\n", reprPath, span.StartLine+1, span.StartCol+1)
	displaySourceText(absPath, span)
}

// displayStdError renders a standard Go error as a diagnostic.
func displayStdError(reprPath string, err error) {
	fmt.Printf("error: %s: %s\n\n", reprPath, err)
}

// displaySourceText prints the source line(s) covered by span with a caret
// underline, matching spec.md §4.1's "source excerpt with a caret
// underline matching the span".
func displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		displayICE(fmt.Sprintf("failed to open %s to render diagnostic: %s", absPath, err))
		return
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		fmt.Println()
		return
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+span.StartLine+1)
		fmt.Println(line)

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		var prefix int
		if i == 0 {
			prefix = span.StartCol
		}

		var carets int
		if i == len(lines)-1 {
			if span.EndCol > prefix {
				carets = span.EndCol - prefix
			} else {
				carets = 1
			}
		} else {
			carets = len(line) - prefix
		}

		fmt.Print(strings.Repeat(" ", prefix))
		fmt.Println(strings.Repeat("^", carets))
	}

	fmt.Println()
}
