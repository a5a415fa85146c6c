package searchio

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the prefix written before each message
type LogFormat int

const (
	LogFormatPlain  LogFormat = iota // No prefix
	LogFormatTagged                  // [INFO] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                 // • ℹ ⚠ ✗
)

// Logger writes levelled messages. Everything but info goes to stderr
// unless ErrorsToStderr(false) is set.
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	minLevel     LogLevel
	errorsStderr bool
	colors       map[LogLevel]*color.Color
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(iom *IOManager) *Logger {
	l := &Logger{
		io:           iom,
		format:       LogFormatPlain,
		prefixes:     map[LogLevel]string{},
		minLevel:     LevelInfo,
		errorsStderr: true,
		colors: map[LogLevel]*color.Color{
			LevelDebug:   color.New(color.FgMagenta),
			LevelInfo:    color.New(color.FgCyan),
			LevelWarning: color.New(color.FgYellow),
			LevelError:   color.New(color.FgRed, color.Bold),
		},
	}
	l.applyColor()
	return l
}

// applyColor makes every level colour follow the IO manager rather than
// fatih/color's own stdout detection.
func (l *Logger) applyColor() {
	enabled := l.io.SupportsColor()
	for _, c := range l.colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatTagged:
		l.prefixes = map[LogLevel]string{
			LevelDebug:   "[DEBUG]",
			LevelInfo:    "[INFO]",
			LevelWarning: "[WARN]",
			LevelError:   "[ERROR]",
		}
	case LogFormatSymbols:
		l.prefixes = map[LogLevel]string{
			LevelDebug:   "•",
			LevelInfo:    "ℹ",
			LevelWarning: "⚠",
			LevelError:   "✗",
		}
	case LogFormatPlain:
		l.prefixes = map[LogLevel]string{}
	}
	return l
}

// WithLevel drops messages below level
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// ErrorsToStderr controls whether debug, warning and error messages go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.selectWriter(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}
	if prefix := l.prefixes[level]; prefix != "" {
		msg = prefix + " " + msg
	}
	if c, ok := l.colors[level]; ok {
		return c.Sprint(msg)
	}
	return msg
}

// selectWriter keeps stdout for results and info messages
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && level != LevelInfo {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
