package internal

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
)

const loggingTimestampLayout = "2006/01/02 15:04:05 "

// Logger is an implementation of Printer which writes timestamped lines to an io.Writer.
type Logger struct {
	mux          sync.Mutex
	currentLevel VerbosityLevel
	writer       io.Writer
	enableColor  bool
	now          func() time.Time
}

// NewLogger creates a new logger.
func NewLogger(level VerbosityLevel, writer io.Writer, enableColor bool) *Logger {
	return &Logger{
		currentLevel: level,
		writer:       writer,
		enableColor:  enableColor,
		now:          time.Now,
	}
}

// Log writes a new line to the underlying writer if the verbosity level is less than or equal to the current level.
func (l *Logger) Log(level VerbosityLevel, message string) {
	if l.currentLevel < level {
		return
	}
	ts := l.now().Format(loggingTimestampLayout)
	if l.enableColor {
		ts = color.Gray.Render(ts)
	}
	l.mux.Lock()
	defer l.mux.Unlock()
	_, _ = fmt.Fprintln(l.writer, ts+message)
}

// Logf formats according to a format specifier and writes a new line to the underlying writer,
// if the verbosity level is less than or equal to the current level.
func (l *Logger) Logf(level VerbosityLevel, format string, a ...interface{}) {
	if l.currentLevel < level {
		return
	}
	l.Log(level, fmt.Sprintf(format, a...))
}

// Level returns the current verbosity level.
func (l *Logger) Level() VerbosityLevel {
	return l.currentLevel
}
