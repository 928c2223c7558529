package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	noteColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// Display renders an error produced by the compiler.  Syntax and compile errors
// are shown with the offending source lines and carret underlining; any other
// error is printed on a single line.  The source is the text of the file named
// by reprPath: it may be empty in which case no source text is shown.
func Display(reprPath, source string, err error) {
	var se *SyntaxError
	var ce *CompileError

	switch {
	case errors.As(err, &se):
		displayMessage("Syntax Error", reprPath, source, se.Span, se.Message)
		if se.Note != "" {
			noteColorFG.Println("note: " + se.Note)
			fmt.Println()
		}
	case errors.As(err, &ce):
		if ce.File != "" && ce.File != reprPath {
			// The source we were given is not the source of the error.
			displayMessage("Compile Error", ce.File, "", ce.Span, ce.Message)
		} else {
			displayMessage("Compile Error", reprPath, source, ce.Span, ce.Message)
		}
	default:
		errorStyleBG.Print("Error")
		errorColorFG.Println(" " + err.Error())
	}
}

// displayMessage displays a compilation error banner followed by the source
// selection if both a span and source text are available.
func displayMessage(tag, reprPath, source string, span *TextSpan, message string) {
	errorStyleBG.Print(tag)
	if span == nil {
		fmt.Printf(" %s: %s\n\n", reprPath, message)
		return
	}

	fmt.Printf(" %s:%d:%d: %s\n\n", reprPath, span.StartLine+1, span.StartCol+1, message)

	if source != "" {
		displaySourceText(source, span)
	}
}

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(source string, span *TextSpan) {
	// Collect all the source lines containing the given source text.
	var lines []string
	for ln, line := range strings.Split(source, "\n") {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(strings.TrimRight(line, "\r"), "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		infoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		prefix := 0
		if i == 0 {
			prefix = span.StartCol - minIndent
		}

		end := len(line)
		if i == len(lines)-1 && span.EndCol < end {
			end = span.EndCol
		}

		count := end - prefix - minIndent
		if count < 1 {
			count = 1
		}

		fmt.Print(strings.Repeat(" ", clampZero(prefix)))
		errorColorFG.Println(strings.Repeat("^", count))
	}

	fmt.Println()
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
