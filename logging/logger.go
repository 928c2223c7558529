package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// compiler as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be displayed at the end of
	// compilation
	warnings []string

	// m is the mutex used to synchronize the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing compilation notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, compiler version and progress summary, closing message (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) *Logger {
	return &Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleError records an error and displays it using the given display
// function if the log level permits.
func (l *Logger) handleError(display func()) {
	l.m.Lock()
	defer l.m.Unlock()

	l.errorCount++

	if l.LogLevel > LogLevelSilent {
		displayEndPhase(false)
		display()
	}
}

// handleWarning records a warning to be displayed when compilation finishes.
func (l *Logger) handleWarning(warning string) {
	l.m.Lock()
	defer l.m.Unlock()

	l.warnings = append(l.warnings, warning)
}
