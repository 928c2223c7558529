package logging

import (
	"fmt"
	"strings"
	"time"

	"arcc/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting compilation
func displayCompileHeader(target string, caching bool) {
	fmt.Print("arcc ")
	InfoColorFG.Print("v" + common.ArccVersion)
	fmt.Print(" -- target: ")
	InfoColorFG.Println(target)

	if caching {
		fmt.Println("compiling using cache")
	}
}

// The spinner of the phase currently being displayed.  This is nil when no
// phase is in progress.
var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

// phaseColumn is the width the phase names are padded to.
const phaseColumn = len("Compiling") + 2

// displayBeginPhase starts a spinner for a compilation phase
func displayBeginPhase(phase string) {
	currentPhase = phase

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	phaseSpinner.SuccessPrinter = phasePrinter("Done", SuccessStyleBG)
	phaseSpinner.FailPrinter = phasePrinter("Fail", ErrorStyleBG)

	phaseSpinner.Start(padPhase(phase + "..."))
	phaseStartTime = time.Now()
}

// displayEndPhase stops the current phase spinner, if any
func displayEndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	if success {
		elapsed := fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds())
		phaseSpinner.Success(padPhase(currentPhase), elapsed)
	} else {
		phaseSpinner.Fail(padPhase(currentPhase))
	}

	phaseSpinner = nil
}

func phasePrinter(text string, style *pterm.Style) *pterm.PrefixPrinter {
	return &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: style,
			Text:  text,
		},
	}
}

func padPhase(text string) string {
	if len(text) >= phaseColumn+3 {
		return text + " "
	}

	return text + strings.Repeat(" ", phaseColumn+3-len(text))
}

// displayCompilationFinished displays a compilation finished message
func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Println()

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	displayCount(errorCount, "error", ErrorColorFG)
	fmt.Print(", ")
	displayCount(warningCount, "warning", WarnColorFG)
	fmt.Println(")")
}

// displayCount displays a count of messages: zero counts are always shown as
// a success.
func displayCount(count int, noun string, color pterm.Color) {
	if count == 0 {
		color = SuccessColorFG
	}

	color.Print(count)
	if count == 1 {
		fmt.Print(" " + noun)
	} else {
		fmt.Print(" " + noun + "s")
	}
}
