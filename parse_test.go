package swifft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInputsBitZeroIsFirstCoeffOfX0(t *testing.T) {
	block := make([]byte, InBlockSize)
	block[0] = 0x01
	polys := parseInputs(block)
	require.Equal(t, fieldElement(1), polys[0][0])
	for i := 1; i < n; i++ {
		require.Equal(t, fieldElement(0), polys[0][i])
	}
	for i := 1; i < m; i++ {
		require.Equal(t, Zero, polys[i])
	}
}

func TestParseInputsBitSixtyFourIsFirstCoeffOfX1(t *testing.T) {
	block := make([]byte, InBlockSize)
	block[8] = 0x01
	polys := parseInputs(block)
	require.Equal(t, Zero, polys[0])
	require.Equal(t, fieldElement(1), polys[1][0])
}

func TestParseInputsTopBitIsLastCoeffOfX15(t *testing.T) {
	block := make([]byte, InBlockSize)
	block[255] = 0x80
	polys := parseInputs(block)
	require.Equal(t, fieldElement(1), polys[15][n-1])
}

func TestParseInputsPanicsOnWrongSize(t *testing.T) {
	require.Panics(t, func() { parseInputs(make([]byte, 10)) })
}

func TestParseSignedInputsZeroSignLeavesValueUnchanged(t *testing.T) {
	block := make([]byte, InBlockSize)
	block[0] = 0x01
	sign := make([]byte, InBlockSize)
	polys := parseSignedInputs(block, sign)
	require.Equal(t, fieldElement(1), polys[0][0])
}

func TestParseSignedInputsSetSignNegates(t *testing.T) {
	block := make([]byte, InBlockSize)
	block[0] = 0x01
	sign := make([]byte, InBlockSize)
	sign[0] = 0x01
	polys := parseSignedInputs(block, sign)
	require.Equal(t, fieldNeg(1), polys[0][0])
}

func TestParseSignedInputsSignBitIrrelevantWhenInputZero(t *testing.T) {
	block := make([]byte, InBlockSize)
	sign := make([]byte, InBlockSize)
	sign[0] = 0xff
	polys := parseSignedInputs(block, sign)
	require.Equal(t, Zero, polys[0])
}

func TestParseSignedInputsPanicsOnWrongSize(t *testing.T) {
	block := make([]byte, InBlockSize)
	require.Panics(t, func() { parseSignedInputs(block, make([]byte, 10)) })
}
