package format

// Sink is the capability set the scanner and the modal-state mutator drive
// as they walk a FORMAT string: it accepts emitted characters, position
// changes, and owns the modal state they mutate. It is the Go analogue of
// the runtime's FormatContext / IoStatementState virtual interface.
//
// Emit, HandleSlash, HandleAbsolutePosition and HandleRelativePosition
// return false to mean "buffer full, end-of-record signaled"; the scanner
// propagates that by returning from GetNext or FinishOutput without
// further emission. Crash never returns.
type Sink[C CodeUnit] interface {
	Emit(data []C) bool
	HandleSlash(repeat int32) bool
	HandleAbsolutePosition(n int32) bool
	HandleRelativePosition(n int32) bool
	MutableModes() *ModalState
	Crash(format string, args ...any)
}

// Unsupported embeds into a concrete Sink to supply the "crash by default"
// behavior an input-only or non-data-transfer statement should give any
// control edit or emission it can't actually carry out. Embedders that are
// output-capable override the methods they need; Unsupported only needs a
// Crash implementation to delegate to.
type Unsupported[C CodeUnit] struct {
	Crasher interface {
		Crash(format string, args ...any)
	}
}

func (u Unsupported[C]) Emit([]C) bool {
	u.Crasher.Crash("Cannot emit data from this FORMAT string")
	return false
}

func (u Unsupported[C]) HandleSlash(int32) bool {
	u.Crasher.Crash("A / control edit descriptor may not appear in this FORMAT string")
	return false
}

func (u Unsupported[C]) HandleAbsolutePosition(int32) bool {
	u.Crasher.Crash("A Tn control edit descriptor may not appear in this FORMAT string")
	return false
}

func (u Unsupported[C]) HandleRelativePosition(int32) bool {
	u.Crasher.Crash("An nX, TLn, or TRn control edit descriptor may not appear in this FORMAT string")
	return false
}
