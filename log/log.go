// Package log provides the small leveled-logging shim used by the reader to
// report non-fatal parse anomalies (every condition it records as a
// Diagnostic) without forcing a logging framework choice on callers: a
// minimal Logger interface, a level filter, an io.Writer-backed logger, and
// a discarding default — not a
// full adoption of a third-party structured-logging framework, since
// nothing in this module actually needs more than "print this at this
// level".
package log

import (
	"fmt"
	"io"
)

// Level is a logging severity.
type Level uint8

const (
	LevelDebug Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal leveled-logging interface consumed by this module.
// Callers may supply their own implementation (adapting zap, zerolog,
// logrus, etc.) via blf.WithLogger.
type Logger interface {
	Log(level Level, msg string)
}

// stdLogger writes formatted lines to an io.Writer.
type stdLogger struct {
	w io.Writer
}

// NewStdLogger returns a Logger that writes "LEVEL msg" lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (s *stdLogger) Log(level Level, msg string) {
	fmt.Fprintf(s.w, "%s %s\n", level, msg)
}

// filter wraps a Logger and drops messages below a minimum level.
type filter struct {
	next Logger
	min  Level
}

// NewFilter returns a Logger that forwards to next only messages at or above
// min severity.
func NewFilter(next Logger, min Level) Logger {
	return &filter{next: next, min: min}
}

func (f *filter) Log(level Level, msg string) {
	if level < f.min {
		return
	}
	f.next.Log(level, msg)
}

// Helper adds Debugf/Warnf/Errorf printf-style convenience methods on top of
// a Logger for decode call sites to use.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger with printf-style convenience methods.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) Debugf(format string, args ...any) {
	h.logger.Log(LevelDebug, fmt.Sprintf(format, args...))
}

func (h *Helper) Warnf(format string, args ...any) {
	h.logger.Log(LevelWarn, fmt.Sprintf(format, args...))
}

func (h *Helper) Errorf(format string, args ...any) {
	h.logger.Log(LevelError, fmt.Sprintf(format, args...))
}

// Nop returns a Helper that discards everything, used as the zero-value
// default so Reader is usable without explicit logger configuration.
func Nop() *Helper {
	return NewHelper(NewFilter(NewStdLogger(io.Discard), LevelError))
}
