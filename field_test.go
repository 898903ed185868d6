package swifft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldAddSubNeg(t *testing.T) {
	for a := fieldElement(0); a < p; a++ {
		for b := fieldElement(0); b < p; b += 7 {
			require.Less(t, int(fieldAdd(a, b)), p)
			require.Equal(t, a, fieldAdd(fieldAdd(a, b), fieldNeg(b)), "a+b-b != a")
			require.Equal(t, fieldSub(a, b), fieldAdd(a, fieldNeg(b)))
		}
	}
}

func TestFieldDouble(t *testing.T) {
	for a := fieldElement(0); a < p; a++ {
		require.Equal(t, fieldAdd(a, a), fieldDouble(a))
	}
}

func TestFieldMulIdentityAndZero(t *testing.T) {
	for a := fieldElement(0); a < p; a++ {
		require.Equal(t, a, fieldMul(a, 1))
		require.Equal(t, fieldElement(0), fieldMul(a, 0))
	}
}

func TestFieldSquare(t *testing.T) {
	for a := fieldElement(0); a < p; a++ {
		require.Equal(t, fieldMul(a, a), fieldSquare(a))
	}
}

func TestFieldInvIsMultiplicativeInverse(t *testing.T) {
	for a := fieldElement(1); a < p; a++ {
		require.Equal(t, fieldElement(1), fieldMul(a, fieldInv(a)), "a=%d", a)
	}
}

func TestFieldInvZeroPanics(t *testing.T) {
	require.Panics(t, func() { fieldInv(0) })
}

func TestFieldDivRoundTrip(t *testing.T) {
	for a := fieldElement(0); a < p; a++ {
		for b := fieldElement(1); b < p; b += 11 {
			require.Equal(t, a, fieldMul(fieldDiv(a, b), b))
		}
	}
}

func TestFieldPowMatchesRepeatedMul(t *testing.T) {
	for a := fieldElement(1); a < p; a += 3 {
		acc := fieldElement(1)
		for e := 0; e < 10; e++ {
			require.Equal(t, acc, fieldPow(a, e), "a=%d e=%d", a, e)
			acc = fieldMul(acc, a)
		}
	}
}

// TestRootsOfUnityChain checks every named root is the square of the one
// above it, and that omega256 has the order its name claims.
func TestRootsOfUnityChain(t *testing.T) {
	chain := []struct {
		name  string
		upper fieldElement
		lower fieldElement
	}{
		{"omega128", omega256, omega128},
		{"omega64", omega128, omega64},
		{"omega32", omega64, omega32},
		{"omega16", omega32, omega16},
		{"omega8", omega16, omega8},
		{"omega4", omega8, omega4},
		{"omega2", omega4, omega2},
	}
	for _, tc := range chain {
		require.Equal(t, tc.lower, fieldSquare(tc.upper), tc.name)
	}
	require.Equal(t, fieldElement(1), fieldPow(omega256, 256))
	require.Equal(t, fieldElement(1), fieldPow(omega64, 64))
	require.Equal(t, fieldElement(256), omega2) // -1 mod p
}
