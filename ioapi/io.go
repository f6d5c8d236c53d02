// Package ioapi is the thin I/O-statement façade sitting between the
// FORMAT scanner (package format) and a caller driving one Fortran I/O
// statement: it owns the destination buffer, the cursor into it, and the
// end-of-record flag, and it recovers a FORMAT engine crash at each entry
// point and turns it into a non-zero IoStat rather than letting it escape.
//
// The exported function names mirror the C-callable ABI a compiler's
// runtime support library exposes (BeginInternalFormattedOutput,
// OutputInteger64, OutputReal64, EndIoStatement) so a cgo shim could bind
// them directly; Cookie plays the role of the opaque handle those names
// pass around.
package ioapi

import (
	"github.com/soypat/fortran-format/format"
	"github.com/soypat/fortran-format/ioedit"
)

// IoStat is the small integer status EndIoStatement reports: 0 on
// success, negative for end-of-record, positive for a FORMAT error.
type IoStat int32

const (
	IostatOK          IoStat = 0
	IostatEnd         IoStat = -1
	IostatFormatError IoStat = 1
)

// Cookie is the opaque handle every other exported function in this
// package takes as its first argument.
type Cookie = *statementState

type statementState struct {
	buffer []byte
	at     int32

	eor     bool
	modes   format.ModalState
	scanner *format.Control[byte]

	crashed *format.Error
	source  string
	line    int
}

// BeginInternalFormattedOutput starts an internal (in-memory buffer)
// formatted write: it blank-fills buffer and validates & sizes the
// FORMAT scanner's iteration stack before any data edit is requested. A
// malformed FORMAT crashes immediately, before any output is attempted.
func BeginInternalFormattedOutput(buffer []byte, f []byte, sourceFile string, sourceLine int) (io Cookie) {
	for i := range buffer {
		buffer[i] = ' '
	}
	st := &statementState{buffer: buffer, source: sourceFile, line: sourceLine}
	io = st

	defer func() {
		if r := recover(); r != nil {
			st.crashed = asFormatError(r)
		}
	}()
	maxNesting := format.MaxParenthesisNesting(f, func(msg string, args ...any) {
		format.Crash(-1, msg, args...)
	})
	st.scanner = format.NewControl(f, maxNesting+2)
	return st
}

// OutputInteger64 formats n under the next data edit descriptor. It
// returns false on a FORMAT crash or on end-of-record.
func OutputInteger64(io Cookie, n int64) (ok bool) {
	if io.crashed != nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			io.crashed = asFormatError(r)
			ok = false
		}
	}()
	var edit format.DataEdit
	io.scanner.GetNext(io, &edit, 1)
	return ioedit.FormatInteger(io, n, edit)
}

// OutputReal64 is reserved: the real-number scalar formatter is an
// external collaborator this core does not implement. It still pulls the
// next data edit (so FORMAT position advances correctly for a caller that
// mixes integer and real output against the same FORMAT) and crashes for
// every descriptor other than E, including F, D and G. Under an E
// descriptor it renders nothing and returns false.
func OutputReal64(io Cookie, v float64) (ok bool) {
	if io.crashed != nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			io.crashed = asFormatError(r)
			ok = false
		}
	}()
	var edit format.DataEdit
	io.scanner.GetNext(io, &edit, 1)
	switch edit.Descriptor {
	case 'E':
		// TODO: EN, ES, EX, and plain E itself are not rendered here.
	default:
		io.Crash("Data edit descriptor '%c' does not correspond to a REAL data item", edit.Descriptor)
	}
	return false
}

// EndIoStatement runs FinishOutput once (emitting any trailing literal or
// control edits) and reports the statement's final status.
func EndIoStatement(io Cookie) (stat IoStat) {
	if io.crashed != nil {
		return IostatFormatError
	}
	defer func() {
		if r := recover(); r != nil {
			io.crashed = asFormatError(r)
			stat = IostatFormatError
		}
	}()
	io.scanner.FinishOutput(io)
	return io.ioStat()
}

func (s *statementState) ioStat() IoStat {
	switch {
	case s.crashed != nil:
		return IostatFormatError
	case s.eor:
		return IostatEnd
	default:
		return IostatOK
	}
}

func asFormatError(r any) *format.Error {
	if e, ok := r.(*format.Error); ok {
		return e
	}
	if e, ok := r.(error); ok {
		return &format.Error{Offset: -1, Msg: e.Error()}
	}
	return &format.Error{Offset: -1, Msg: "internal Fortran runtime error"}
}

// Emit, HandleSlash, HandleAbsolutePosition, HandleRelativePosition,
// MutableModes and Crash implement format.Sink[byte] over the statement's
// destination buffer: a single-record internal write has no notion of a
// new record, so HandleSlash always crashes rather than overriding it.

func (s *statementState) Emit(data []byte) bool {
	if int32(len(data))+s.at > int32(len(s.buffer)) {
		s.eor = true
		if s.at < int32(len(s.buffer)) {
			copy(s.buffer[s.at:], data)
			s.at = int32(len(s.buffer))
		}
		return false
	}
	copy(s.buffer[s.at:], data)
	s.at += int32(len(data))
	return true
}

func (s *statementState) HandleSlash(int32) bool {
	s.Crash("A / control edit descriptor may not appear in this FORMAT string")
	return false
}

func (s *statementState) HandleAbsolutePosition(n int32) bool {
	if n < 0 {
		n = 0
	}
	if n >= int32(len(s.buffer)) {
		s.eor = true
		return false
	}
	s.at = n
	return true
}

func (s *statementState) HandleRelativePosition(n int32) bool {
	if n < 0 {
		back := -n
		if back > s.at {
			back = s.at
		}
		s.at -= back
		return true
	}
	if s.at+n > int32(len(s.buffer)) {
		s.eor = true
		s.at = int32(len(s.buffer))
		return false
	}
	s.at += n
	return true
}

func (s *statementState) MutableModes() *format.ModalState { return &s.modes }

func (s *statementState) Crash(msg string, args ...any) {
	format.Crash(-1, msg, args...)
}
