package task

import "fmt"

// Error is the single failure type surfaced to the invoking build process.
// Configuration errors, parser construction errors and compiler errors are
// all translated into it; the original cause, when there is one, stays
// reachable through Unwrap.
type Error struct {
	Msg   string
	Cause error
}

func newError(msg string, cause error) *Error {
	return &Error{Msg: msg, Cause: cause}
}

func errorf(format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }
