// Package logging provides a pluggable, zero-overhead-by-default logging
// hook for the extraction pipeline. Hosts that embed this module register
// their own logger; by default nothing is emitted.
package logging

// Level identifies log severity.
type Level string

const (
	DebugLevel Level = "debug"
	WarnLevel  Level = "warn"
)

// Func handles a single log event. Implementations must be safe to call
// from any goroutine; extraction itself is single-threaded, but a host may
// run several extractions concurrently on separate Documents.
type Func func(level Level, msg string, keyvals ...interface{})

var logFunc Func = func(Level, string, ...interface{}) {}

// SetLogger installs the host's logging function. Passing nil restores the
// no-op default.
func SetLogger(f Func) {
	if f == nil {
		logFunc = func(Level, string, ...interface{}) {}
		return
	}
	logFunc = f
}

// Debug logs a low-level diagnostic (a ToUnicode stream that fails to decode).
func Debug(msg string, keyvals ...interface{}) {
	logFunc(DebugLevel, msg, keyvals...)
}

// Warn logs a recoverable anomaly (a content stream that fails to decode,
// for example through an unsupported filter).
func Warn(msg string, keyvals ...interface{}) {
	logFunc(WarnLevel, msg, keyvals...)
}
