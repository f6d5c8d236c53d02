package ioapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soypat/fortran-format/ioapi"
)

func TestHelloWorldScenario(t *testing.T) {
	buf := make([]byte, 32)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte(`(12HHELLO, WORLD,2X,I3,1X,'0x',Z8)`), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 678))
	require.True(t, ioapi.OutputInteger64(io, 0xFEEDFACE))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, "HELLO, WORLD  678 0xFEEDFACE    ", string(buf))
}

func TestRepeatedDescriptorScenario(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(2(I2,','),I2)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 1))
	require.True(t, ioapi.OutputInteger64(io, 2))
	require.True(t, ioapi.OutputInteger64(io, 3))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, " 1, 2, 3", string(buf))
}

func TestWidthTruncationMarksOverflow(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(I3)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 12345))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, "***     ", string(buf))
}

func TestSignPlusModalEdit(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(SP,I4)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 7))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, "  +7    ", string(buf))
}

func TestHexDescriptor(t *testing.T) {
	buf := make([]byte, 4)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(Z4)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 0xAB))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, "  AB", string(buf), "Z4 with no explicit digit count blank-pads, it does not zero-pad")
}

func TestHexDescriptorWithMinimumDigits(t *testing.T) {
	buf := make([]byte, 4)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(Z4.4)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 0xAB))
	require.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, "00AB", string(buf))
}

func TestMalformedFormatCrashesAtBegin(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(I3"), "io_test.go", 1)
	assert.False(t, ioapi.OutputInteger64(io, 1), "a cookie from a crashed Begin call must short-circuit every later call")
	assert.Equal(t, ioapi.IostatFormatError, ioapi.EndIoStatement(io))
}

func TestDataDescriptorMismatchCrashesAndSurvivesAsStatus(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(F4.1)"), "io_test.go", 1)
	assert.False(t, ioapi.OutputInteger64(io, 1), "F is not an integer descriptor")
	assert.Equal(t, ioapi.IostatFormatError, ioapi.EndIoStatement(io))
}

func TestOutOfDataOnInternalWriteCrashes(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(I2)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 1))
	// A second request exceeds what the FORMAT provides for; an internal
	// write has no second record to revert into, so this must fail rather
	// than loop.
	assert.False(t, ioapi.OutputInteger64(io, 2))
	assert.Equal(t, ioapi.IostatFormatError, ioapi.EndIoStatement(io))
}

func TestBufferOverrunSignalsEndOfRecord(t *testing.T) {
	buf := make([]byte, 2)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(I4)"), "io_test.go", 1)
	assert.False(t, ioapi.OutputInteger64(io, 7))
	assert.Equal(t, ioapi.IostatEnd, ioapi.EndIoStatement(io))
}

func TestOutputReal64CrashesOnNonEDescriptor(t *testing.T) {
	buf := make([]byte, 8)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(F4.1)"), "io_test.go", 1)
	assert.False(t, ioapi.OutputReal64(io, 3.5))
	assert.Equal(t, ioapi.IostatFormatError, ioapi.EndIoStatement(io))
}

func TestEndIoStatementIsIdempotentAfterSuccess(t *testing.T) {
	buf := make([]byte, 4)
	io := ioapi.BeginInternalFormattedOutput(buf, []byte("(I3)"), "io_test.go", 1)
	require.True(t, ioapi.OutputInteger64(io, 5))
	assert.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
	assert.Equal(t, ioapi.IostatOK, ioapi.EndIoStatement(io))
}
