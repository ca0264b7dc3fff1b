package report

import "sync"

// reporter is the process-wide, mutex-guarded diagnostic reporter. It is
// the only piece of global mutable state the core depends on outside of
// the compiler-configured standard-library root (see source.Manager).
type reporter struct {
	m        *sync.Mutex
	logLevel int
	isErr    bool
}

// Enumeration of log levels.
const (
	LogLevelSilent = iota // no output
	LogLevelError         // errors only
	LogLevelWarn          // errors and warnings
	LogLevelVerbose       // errors, warnings, and everything else (default)
)

var rep *reporter

// InitReporter initializes the global reporter. Calling it more than once
// is a no-op so that library-style embedding of the core does not clobber
// an already-configured level.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
		}
	}
}
