package format

import "fmt"

// Error reports a fatal FORMAT-syntax or type-mismatch condition. It is the
// value every Sink.Crash implementation in this module panics with; the
// surrounding I/O-statement layer recovers it at each statement boundary
// and translates it into a status code according to its own policy.
type Error struct {
	// Offset is the byte offset into the FORMAT string where the failure
	// was detected, or -1 when the failure has no FORMAT-position context
	// (e.g. a type mismatch between descriptor and scalar formatter).
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return e.Msg
	}
	return fmt.Sprintf("FORMAT error at offset %d: %s", e.Offset, e.Msg)
}

// Crash panics with a *Error built from a printf-style message, the
// non-returning terminator control edits and data formatters call when
// they hit a condition they cannot recover from. offset is -1 when there
// is no useful FORMAT position to report.
func Crash(offset int, format string, args ...any) {
	panic(&Error{Offset: offset, Msg: fmt.Sprintf(format, args...)})
}
