// Package ioedit implements the integer edit-descriptor formatter: the
// one scalar formatter this runtime carries in full. The real, character
// and descriptor-driven formatters are external collaborators: package
// ioapi carries only a failing OutputReal64 entry point for the real one,
// and nothing for the character or descriptor-driven ones.
package ioedit

import "github.com/soypat/fortran-format/format"

// Sink is what FormatInteger needs from its caller: a place to push
// formatted characters.
type Sink interface {
	Emit(data []byte) bool
}

// FormatInteger renders the signed 64-bit value n under edit, which must
// have Descriptor one of I, B, O, Z or G. It returns false exactly when
// some call to sink.Emit returned false (end-of-record / buffer full);
// the caller should stop issuing further output for the statement, and
// true once every byte of the field — including any blank padding — has
// been accepted by the sink.
func FormatInteger(sink Sink, n int64, edit format.DataEdit) bool {
	var buf [66]byte
	p := len(buf)

	var u uint64
	if n < 0 {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}

	signChars := 0
	switch edit.Descriptor {
	case 'G', 'I':
		if n < 0 || edit.Modes.EditingFlags&format.SignPlus != 0 {
			signChars = 1
		}
		for u > 0 {
			p--
			buf[p] = byte('0' + u%10)
			u /= 10
		}
	case 'B':
		for ; u > 0; u >>= 1 {
			p--
			buf[p] = byte('0' + u&1)
		}
	case 'O':
		for ; u > 0; u >>= 3 {
			p--
			buf[p] = byte('0' + u&7)
		}
	case 'Z':
		for ; u > 0; u >>= 4 {
			p--
			digit := u & 0xf
			if digit >= 10 {
				buf[p] = byte('A' + digit - 10)
			} else {
				buf[p] = byte('0' + digit)
			}
		}
	default:
		panic(&format.Error{Offset: -1, Msg: "data edit descriptor does not correspond to an INTEGER data item"})
	}

	digits := int32(len(buf) - p)
	var leadingZeroes int32
	width := edit.Width
	if edit.Digits != nil && digits <= *edit.Digits {
		if *edit.Digits == 0 && n == 0 {
			// Iw.0 with a zero value: the field is blank, not "0".
			signChars = 0
			if width < 1 {
				width = 1
			}
		} else {
			leadingZeroes = *edit.Digits - digits
		}
	} else if n == 0 {
		leadingZeroes = 1
	}

	total := int32(signChars) + leadingZeroes + digits
	if width > 0 && total > width {
		for j := width; j > 0; j-- {
			if !sink.Emit([]byte{'*'}) {
				return false
			}
		}
		return true
	}
	for total < width {
		if !sink.Emit([]byte{' '}) {
			return false
		}
		total++
	}
	if signChars == 1 {
		c := byte('+')
		if n < 0 {
			c = '-'
		}
		if !sink.Emit([]byte{c}) {
			return false
		}
	}
	for ; leadingZeroes > 0; leadingZeroes-- {
		if !sink.Emit([]byte{'0'}) {
			return false
		}
	}
	return sink.Emit(buf[p:])
}
