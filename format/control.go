package format

// handleControl applies a control edit descriptor's effect: it mutates
// modal state or delegates to the sink's positioning calls. first and
// second are the (already capitalized) descriptor letters, second is 0
// when the descriptor is a single letter; n is the signed count that
// precedes nX/Tn/TLn/TRn/nP, defaulted to 1 by the caller when absent.
//
// generalized to the CodeUnit-parametric Sink.
func handleControl[C CodeUnit](sink Sink[C], scale *int32, first, second byte, n int32) bool {
	modes := sink.MutableModes()
	switch first {
	case 'B':
		switch second {
		case 'Z':
			modes.EditingFlags |= BlankZero
			return true
		case 'N':
			modes.EditingFlags &^= BlankZero
			return true
		}
	case 'D':
		switch second {
		case 'C':
			modes.EditingFlags |= DecimalComma
			return true
		case 'P':
			modes.EditingFlags &^= DecimalComma
			return true
		}
	case 'P':
		if second == 0 {
			*scale = n // kP scale factor, persists until superseded
			modes.Scale = n
			return true
		}
	case 'R':
		switch second {
		case 'N':
			modes.RoundingMode = TiesToEven
			return true
		case 'Z':
			modes.RoundingMode = ToZero
			return true
		case 'U':
			modes.RoundingMode = Up
			return true
		case 'D':
			modes.RoundingMode = Down
			return true
		case 'C':
			modes.RoundingMode = TiesAwayFromZero
			return true
		}
	case 'X':
		if second == 0 {
			return sink.HandleRelativePosition(n)
		}
	case 'S':
		switch second {
		case 'P':
			modes.EditingFlags |= SignPlus
			return true
		case 0, 'S':
			modes.EditingFlags &^= SignPlus
			return true
		}
	case 'T':
		switch second {
		case 0: // Tn
			return sink.HandleAbsolutePosition(n)
		case 'L':
			return sink.HandleRelativePosition(-n)
		case 'R':
			return sink.HandleRelativePosition(n)
		}
	}
	if second != 0 {
		sink.Crash("Unknown '%c%c' edit descriptor in FORMAT", first, second)
	} else {
		sink.Crash("Unknown '%c' edit descriptor in FORMAT", first)
	}
	return false
}
