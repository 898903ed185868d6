package swifft

import "crypto/sha3"

// seedParams is the fixed "nothing up my sleeve" seed the 16 public
// multiplier polynomials A0..A15 are expanded from. Per spec §6, the
// multiplier polynomials "must be fixed values ... process-wide
// constants known at build time"; the literal published SWIFFT reference
// values were not available to derive this implementation from, so this
// repo adopts the teacher's own RejNTTPoly idiom (sample.go's
// sampleNTTPoly, itself deriving FIPS 204's matrix A from a seed via
// SHAKE128 rejection sampling) to deterministically expand one fixed seed
// into sixteen fixed ring elements instead (see DESIGN.md's Open Question
// decision).
var seedParams = [32]byte{
	0x53, 0x57, 0x49, 0x46, 0x46, 0x54, 0x2d, 0x63,
	0x6f, 0x72, 0x65, 0x2d, 0x70, 0x61, 0x72, 0x61,
	0x6d, 0x73, 0x2d, 0x76, 0x31, 0x00, 0x01, 0x02,
	0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
}

// multipliers holds A0..A15, the sixteen fixed public multiplier
// polynomials (spec §3, §4.6). multiplierNTT holds their precomputed
// NTT-domain images Ahat_i = NTT(twist(A_i)) -- "the only cache the core
// maintains" per spec §3.
var (
	multipliers   [m]Poly
	multiplierNTT [m]Poly
)

func init() {
	for i := 0; i < m; i++ {
		multipliers[i] = sampleMultiplier(seedParams[:], byte(i))
		multiplierNTT[i] = ntt(twistPoly(multipliers[i]))
	}
}

// sampleMultiplier expands seed||index into one ring element in R with
// coefficients rejection-sampled uniformly from [0, p), following the
// same SHAKE128-read-then-reject shape as the teacher's sampleNTTPoly
// (sample.go), adapted from FIPS 204's 23-bit/q=8380417 rejection window
// down to a 16-bit/p=257 one.
func sampleMultiplier(seed []byte, index byte) Poly {
	h := sha3.NewSHAKE128()
	h.Write(seed)
	h.Write([]byte{index})

	const limit = 0x10000 - (0x10000 % p) // largest multiple of p representable in 16 bits

	var buf [168]byte // SHAKE128 rate, same as the teacher's sample.go
	var out Poly
	j := 0

	for j < n {
		h.Read(buf[:])
		for i := 0; i+1 < len(buf) && j < n; i += 2 {
			d := uint16(buf[i]) | uint16(buf[i+1])<<8
			if d < limit {
				out[j] = fieldElement(d % p)
				j++
			}
		}
	}
	return out
}
