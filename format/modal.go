package format

// EditingFlags is the bitset portion of the modal state: blanks-as-zeros,
// decimal-comma and forced-plus-sign, each toggled by a control edit.
type EditingFlags uint8

const (
	// BlankZero treats embedded blanks in a numeric input field as zeros
	// rather than ignoring them (BZ sets it, BN clears it).
	BlankZero EditingFlags = 1 << iota
	// DecimalComma selects the European decimal mark (DC sets it, DP
	// clears it).
	DecimalComma
	// SignPlus forces a '+' on non-negative numeric output (SP sets it,
	// S/SS clears it).
	SignPlus
)

// RoundingMode mirrors the five FORMAT rounding control edits R[NZUDC].
type RoundingMode int8

const (
	TiesToEven RoundingMode = iota // RN, and the default
	ToZero                         // RZ
	Up                              // RU
	Down                            // RD
	TiesAwayFromZero               // RC
)

// ModalState is the per-statement editing state that control edits mutate
// and that data-edit formatters read but never write, save for the kP
// scale factor's own persistence rule.
type ModalState struct {
	EditingFlags EditingFlags
	RoundingMode RoundingMode
	Scale        int32 // the kP scale factor
}

func (m ModalState) has(f EditingFlags) bool { return m.EditingFlags&f != 0 }

// Descriptor identifies a data-edit letter. The scanner only recognizes
// upper-case letters; callers that build a DataEdit by hand should
// pre-capitalize.
type Descriptor byte

// DataEdit is what the scanner hands back from GetNext: everything a
// scalar formatter needs to render one (or edit.Repeat) value(s).
type DataEdit struct {
	Descriptor byte // 'I', 'B', 'O', 'Z', 'F', 'E', 'D', 'G', 'A', ...
	Variation  byte // second letter of an E descriptor (EN/ES/EX), else 0

	Width      int32
	Digits     *int32 // the .m field, nil when absent
	ExpoDigits *int32 // the e-digits field, nil when absent
	Repeat     int32  // consecutive items to format under this edit

	Modes ModalState // snapshot of the modal state at the time of the edit
}
