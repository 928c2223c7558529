package logging

import (
	"errors"
	"os"

	"arcc/report"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// logger is a global reference to a shared Logger (created/initialized with the
// compiler, but separated for general usage).  It is silent until initialized.
var logger = newLogger(LogLevelSilent)

// Initialize initializes the global logger with the provided log level.  Color
// output is disabled when standard output is not a terminal.
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn", "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		pterm.DisableColor()
	}

	logger = newLogger(loglevel)
}

// LogLevel returns the log level of the global logger.
func LogLevel() int {
	return logger.LogLevel
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileError logs an error produced while compiling a source file (user
// induced, bad code).  The source text is used to display the offending lines.
func LogCompileError(reprPath, source string, err error) {
	logger.handleError(func() {
		report.Display(reprPath, source, err)
	})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleError(func() {
		PrintErrorMessage(kind+" Error", errors.New(message))
	})
}

// LogBuildWarning logs a warning in the build process
func LogBuildWarning(kind, warning string) {
	logger.handleWarning(kind + ": " + warning)
}

// LogCompileHeader displays the compiler information before compilation
// begins.
func LogCompileHeader(target string, caching bool) {
	if logger.LogLevel == LogLevelVerbose {
		displayCompileHeader(target, caching)
	}
}

// LogBeginPhase logs the beginning of a compilation phase
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase logs the successful end of a compilation phase
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(true)
	}
}

// LogFinished displays the closing compilation message along with any
// warnings accumulated during compilation.
func LogFinished() {
	logger.m.Lock()
	defer logger.m.Unlock()

	if logger.LogLevel >= LogLevelWarning {
		for _, warning := range logger.warnings {
			PrintWarningMessage("Warning", warning)
		}
	}

	if logger.LogLevel > LogLevelSilent {
		displayCompilationFinished(logger.errorCount == 0, logger.errorCount, len(logger.warnings))
	}
}
