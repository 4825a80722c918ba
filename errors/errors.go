package errors

import (
	"errors" // nolint: depguard
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cashapp/triple/util/debug"
)

// terr is an error annotated with the source location it was created at.
// Locations are only rendered when error tracing is enabled via
// TRIPLE_DEBUG or the %+v verb.
type terr struct {
	cause error
	file  string
	line  int
	msg   string
}

func (t *terr) Error() string {
	return t.format(debug.Flags.ErrorTrace)
}

func (t *terr) Unwrap() error {
	return t.cause
}

func (t *terr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, t.format(true))
		} else {
			fmt.Fprint(s, t.Error())
		}
	case 's':
		fmt.Fprint(s, t.format(debug.Flags.ErrorTrace))
	case 'q':
		fmt.Fprintf(s, "%q", t.format(debug.Flags.ErrorTrace))
	}
}

func (t *terr) format(trace bool) string {
	var msg string
	if trace {
		msg += fmt.Sprintf("%s:%d", t.file, t.line)
		if t.msg != "" {
			msg += ": " + t.msg
		}
	} else {
		msg += t.msg
	}
	if t.cause != nil {
		if msg != "" {
			msg += ": "
		}
		if trace {
			msg += fmt.Sprintf("%+v", t.cause)
		} else {
			msg += t.cause.Error()
		}
	}
	return msg
}

var pkgPrefix = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(file)) + "/"
}()

func newErr(cause error, msg string) error {
	_, file, line, _ := runtime.Caller(2)
	file = strings.TrimPrefix(file, pkgPrefix)
	return &terr{cause: cause, file: file, line: line, msg: msg}
}

// New creates a new error.
func New(message string) error {
	return newErr(nil, message)
}

// Errorf creates a new error using fmt.Sprintf().
func Errorf(format string, args ...interface{}) error {
	return newErr(nil, fmt.Sprintf(format, args...))
}

// Wrap chains a new error to "err" if it is not nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return newErr(err, message)
}

// Wrapf chains a new fmt.Sprintf() formatted error to "err" if "err" is not nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return newErr(err, fmt.Sprintf(format, args...))
}

// WithStack chains source location information to an error if "err" is not nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return newErr(err, "")
}

// Is mirrors the stdlib errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As mirrors the stdlib errors.As function.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap aliases the stdlib errors.Unwrap function.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
