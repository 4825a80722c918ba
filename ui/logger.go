// Package ui provides the terminal logger for the triple CLI.
//
// The core triple package never logs; this logger exists for the
// command-line surface only.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cashapp/triple/errors"
)

// Level for a log message.
type Level int

// Log levels.
const (
	// LevelAuto will detect the log level from the environment via
	// TRIPLE_LOG=<level>, DEBUG=1, then finally from flag.
	LevelAuto  Level = iota // auto
	LevelTrace              // trace
	LevelDebug              // debug
	LevelInfo               // info
	LevelWarn               // warn
	LevelError              // error
	LevelFatal              // fatal
)

var levelNames = map[Level]string{
	LevelAuto:  "auto",
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

var levelColor = map[Level]string{
	LevelTrace: "\033[37m",
	LevelDebug: "\033[36m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
	LevelFatal: "\033[31m",
}

func (l Level) String() string {
	return levelNames[l]
}

// Visible returns true if "other" is visible.
func (l Level) Visible(other Level) bool {
	return other >= l
}

func (l *Level) UnmarshalText(text []byte) error {
	var err error
	*l, err = LevelFromString(string(text))
	return err
}

// LevelFromString maps a level to a string.
func LevelFromString(s string) (Level, error) {
	switch s {
	case "auto":
		return LevelAuto, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, errors.Errorf("invalid log level %q", s)
	}
}

// Logger interface.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

// UI writes levelled log output to stdout/stderr, with ANSI colour when
// attached to a TTY.
type UI struct {
	lock        sync.Mutex
	stdout      io.Writer
	stderr      io.Writer
	stdoutIsTTY bool
	stderrIsTTY bool
	minlevel    Level
	exit        func(int)
}

var _ Logger = &UI{}

// New creates a new UI.
func New(level Level, stdout, stderr io.Writer, stdoutIsTTY, stderrIsTTY bool) *UI {
	return &UI{
		stdout:      stdout,
		stderr:      stderr,
		stdoutIsTTY: stdoutIsTTY,
		stderrIsTTY: stderrIsTTY,
		minlevel:    level,
		exit:        os.Exit,
	}
}

// NewForTesting returns a new UI that writes all output to the returned bytes.Buffer.
func NewForTesting() (*UI, *bytes.Buffer) {
	b := &bytes.Buffer{}
	ui := New(LevelTrace, b, b, false, false)
	ui.exit = func(int) {}
	return ui, b
}

// SetLevel sets the UI's minimum log level.
func (w *UI) SetLevel(level Level) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.minlevel = level
}

// WillLog returns true if "level" will be logged.
func (w *UI) WillLog(level Level) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.minlevel.Visible(level)
}

// Printf writes directly to stdout, bypassing level filtering.
func (w *UI) Printf(format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	fmt.Fprintf(w.stdout, format, args...)
}

// Tracef logs a message at trace level.
func (w *UI) Tracef(format string, args ...interface{}) {
	w.logf(LevelTrace, format, args...)
}

// Debugf logs a message at debug level.
func (w *UI) Debugf(format string, args ...interface{}) {
	w.logf(LevelDebug, format, args...)
}

// Infof logs a message at info level.
func (w *UI) Infof(format string, args ...interface{}) {
	w.logf(LevelInfo, format, args...)
}

// Warnf logs a message at warning level.
func (w *UI) Warnf(format string, args ...interface{}) {
	w.logf(LevelWarn, format, args...)
}

// Errorf logs a message at error level.
func (w *UI) Errorf(format string, args ...interface{}) {
	w.logf(LevelError, format, args...)
}

// Fatalf logs a fatal message and exits with a non-zero status.
func (w *UI) Fatalf(format string, args ...interface{}) {
	w.logf(LevelFatal, format, args...)
	w.exit(1)
}

func (w *UI) logf(level Level, format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !w.minlevel.Visible(level) {
		return
	}

	out := w.stdout
	ansi := w.stdoutIsTTY
	if level >= LevelWarn {
		out = w.stderr
		ansi = w.stderrIsTTY
	}

	var msg string
	if ansi {
		msg += "\033[1m" + levelColor[level]
		msg += level.String() + ": "
		msg += "\033[0m" + levelColor[level]
		msg += fmt.Sprintf(format, args...)
		msg += "\033[0m"
	} else {
		msg += level.String() + ": "
		msg += fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(out, msg)
}

// AutoLevel sets the log level from environment variables if set to LevelAuto.
func AutoLevel(level Level) Level {
	if level != LevelAuto {
		return level
	}
	if envLevel := os.Getenv("TRIPLE_LOG"); envLevel != "" {
		if err := level.UnmarshalText([]byte(envLevel)); err == nil {
			return level
		}
	} else if os.Getenv("DEBUG") != "" {
		return LevelTrace
	}
	return LevelInfo
}
