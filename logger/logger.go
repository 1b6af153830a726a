// Package logger provides level-filtered, optionally timestamped and
// colored message emission to an output sink. It is a standalone
// diagnostic collaborator: nothing in dynarray depends on it.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Level is the severity of a log message. Levels are ordered; All and
// None are filter bounds, not emittable levels.
type Level int

const (
	All Level = iota
	Trace
	Debug
	Info
	Warning
	Error
	Fatal
	None
)

// String returns the upper-case tag for the level.
func (l Level) String() string {
	switch l {
	case All:
		return "ALL"
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case None:
		return "NONE"
	}
	return "UNKNOWN"
}

// ansi escape sequences per level. Trace/Debug dim, Warning yellow,
// Error/Fatal red.
var levelColors = map[Level]string{
	Trace:   "\x1b[2m",
	Debug:   "\x1b[2m",
	Info:    "\x1b[36m",
	Warning: "\x1b[33m",
	Error:   "\x1b[31m",
	Fatal:   "\x1b[1;31m",
}

const colorReset = "\x1b[0m"

// Logger writes formatted messages at or above a minimum level to an
// output sink. Not goroutine-safe; serialize access externally if
// sharing a Logger across goroutines.
type Logger struct {
	out       io.Writer
	min       Level
	color     bool
	newline   bool
	timestamp bool
	levelTag  bool
}

// New returns a Logger writing to w. Defaults: all levels emitted,
// trailing newline on, timestamp on, level tag on, color off.
func New(w io.Writer) *Logger {
	return &Logger{
		out:       w,
		min:       All,
		newline:   true,
		timestamp: true,
		levelTag:  true,
	}
}

// SetOutput retargets the Logger to w.
func (l *Logger) SetOutput(w io.Writer) { l.out = w }

// SetLevel sets the minimum level that will be emitted. SetLevel(Fatal)
// keeps only fatal messages; SetLevel(None) silences the Logger.
func (l *Logger) SetLevel(min Level) { l.min = min }

// SetColor toggles ANSI color escapes around each message.
func (l *Logger) SetColor(on bool) { l.color = on }

// SetAppendNewline toggles the trailing '\n' after each message.
func (l *Logger) SetAppendNewline(on bool) { l.newline = on }

// SetTimestamp toggles the datetime prefix.
func (l *Logger) SetTimestamp(on bool) { l.timestamp = on }

// SetLevelTag toggles the "[LEVEL]" prefix (after the timestamp, when
// both are active).
func (l *Logger) SetLevelTag(on bool) { l.levelTag = on }

// Logf emits one formatted message at the given level. Messages below
// the minimum level, or at the All/None bounds, are dropped. Fatal does
// not terminate the process; it is a severity, not an action.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if level < l.min || level <= All || level >= None {
		return
	}
	var b bytes.Buffer
	if l.color {
		b.WriteString(levelColors[level])
	}
	if l.timestamp {
		b.WriteString(time.Now().Format("2006-01-02 15:04:05 "))
	}
	if l.levelTag {
		fmt.Fprintf(&b, "[%s] ", level)
	}
	fmt.Fprintf(&b, format, args...)
	if l.color {
		b.WriteString(colorReset)
	}
	if l.newline {
		b.WriteByte('\n')
	}
	l.out.Write(b.Bytes())
}

// Tracef emits a Trace-level message.
func (l *Logger) Tracef(format string, args ...any) { l.Logf(Trace, format, args...) }

// Debugf emits a Debug-level message.
func (l *Logger) Debugf(format string, args ...any) { l.Logf(Debug, format, args...) }

// Infof emits an Info-level message.
func (l *Logger) Infof(format string, args ...any) { l.Logf(Info, format, args...) }

// Warningf emits a Warning-level message.
func (l *Logger) Warningf(format string, args ...any) { l.Logf(Warning, format, args...) }

// Errorf emits an Error-level message.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(Error, format, args...) }

// Fatalf emits a Fatal-level message. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(Fatal, format, args...) }
