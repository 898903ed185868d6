// Package swifft implements the SWIFFT lattice-based compression
// function: a sum of polynomial products in the quotient ring
// R = Z_257[a]/(a^64 + 1), computed via the Number-Theoretic Transform.
//
// SWIFFT maps a 2048-bit input block to a 1024-bit digest, optionally
// compacted to 512 bits. It is a pure, deterministic compression
// function: every operation is total over its input (spec §7), and there
// is no process-wide mutable state beyond the immutable precomputed
// tables initialised at package load (spec §5).
//
// Basic usage:
//
//	block := swifft.NewInBlock()
//	copy(block.Bytes(), someMessage)
//	digest := swifft.Compute(block)
//	compact := swifft.Compact(digest)
package swifft

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Compute returns D = sum_i A_i * X_i in R, where X_0..X_15 are the 16
// binary-coefficient polynomials parsed out of block (spec §4.6). It
// never fails: all public hash operations are total over their input
// (spec §7).
func Compute(block *InBlock) Digest {
	return computeFromPolys(parseInputs(block.Bytes()))
}

// ComputeSigned is Compute's {-1, 0, 1}-input variant: sign expands the
// input alphabet by negating the coefficient wherever its paired sign bit
// is set (spec §4.5, §4.8).
func ComputeSigned(block *InBlock, sign *SignBlock) Digest {
	return computeFromPolys(parseSignedInputs(block.Bytes(), sign.Bytes()))
}

// computeFromPolys runs the production NTT-domain evaluation of spec
// §4.6:
//  1. X_i_hat = NTT(twist(X_i)) for each of the m input polynomials
//  2. P_i_hat = X_i_hat (*) A_i_hat (Hadamard; A_i_hat precomputed in
//     params.go)
//  3. S_hat = sum_i P_i_hat
//  4. D = untwist(invNTT(S_hat))
//
// This is algebraically equivalent to the schoolbook sum(A_i * X_i) and
// must match it bit-for-bit (spec §4.6). Step 3's reduction is
// associative, so steps 1-2 are computed independently per input before
// folding -- the loop below processes inputs in order, which satisfies
// spec §5's requirement without needing any synchronisation for a single
// block's M=16 inputs (an amount of work too small to profitably
// parallelise; ComputeMultiple parallelises across whole blocks instead,
// where the per-goroutine work is large enough to amortise the overhead).
func computeFromPolys(inputs [m]Poly) Digest {
	var sumHat Poly
	for i := 0; i < m; i++ {
		xHat := ntt(twistPoly(inputs[i]))
		pHat := hadamard(xHat, multiplierNTT[i])
		sumHat = polyAdd(sumHat, pHat)
	}
	return Digest(untwistPoly(invNTTUnscaled(sumHat)))
}

// computeFromPolysNaive is the O(n^2) schoolbook reference evaluation
// sum(A_i * X_i) via naiveMul, used only as a correctness oracle (spec
// §4.6, §8) -- never called from Compute/ComputeSigned.
func computeFromPolysNaive(inputs [m]Poly) Digest {
	var sum Poly
	for i := 0; i < m; i++ {
		sum = polyAdd(sum, naiveMul(multipliers[i], inputs[i]))
	}
	return Digest(sum)
}

// Compact reduces a 1024-bit digest to its 512-bit packed form (spec
// §4.7). Each coefficient c_i in [0, 257) splits into a low byte
// lo = c_i mod 256 and a carry bit hi = (c_i == 256), one per coefficient;
// the 64 output bytes hold lo for every i. Packing all 64 carry bits
// alongside the 64 low bytes would need 512+64 bits, which does not fit
// the fixed 512-bit output (spec §4.7 notes the packing carries "only
// probabilistically" more than 512 bits of entropy) -- so the carry bit
// is the information Compact discards, accepting the resulting collision
// between c_i == 0 and c_i == 256 that spec §4.7/§9 already documents as
// the reason compact digests are not composable under addition.
func Compact(d Digest) CompactDigest {
	var out CompactDigest
	for i, c := range d {
		out[i] = byte(c)
	}
	return out
}

// ComputeMultiple computes Compute independently over N input blocks,
// fanning work out across goroutines bounded by GOMAXPROCS via
// errgroup.Group (spec §5: "the batch functions compute each block
// independently ... callers may observe outputs in block-index order
// because output buffers are indexed, not streamed"). Output order always
// matches input order regardless of scheduling, since each goroutine
// writes only to its own output index. Blocks are claimed batchChunk() at
// a time per goroutine turn, so a core wide enough to host a future SIMD
// inner loop (spec §9's "Vectorisation hint") is handed a correspondingly
// larger unit of independent work. Like Compute, this never fails (spec
// §6: "no error codes: all calls succeed"); errgroup.Group is used purely
// for its bounded-concurrency fan-out, not its error propagation.
func ComputeMultiple(blocks []*InBlock) []Digest {
	out := make([]Digest, len(blocks))
	chunk := batchChunk()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(blocks); start += chunk {
		start, end := start, start+chunk
		if end > len(blocks) {
			end = len(blocks)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = Compute(blocks[i])
			}
			return nil
		})
	}
	g.Wait()
	return out
}

// ComputeMultipleSigned is ComputeMultiple's signed-input counterpart. It
// panics if blocks and signs have different lengths: a paired-array length
// mismatch is a contract violation the type system can't express, not a
// runtime error condition a caller is meant to recover from (spec §7).
func ComputeMultipleSigned(blocks []*InBlock, signs []*SignBlock) []Digest {
	if len(blocks) != len(signs) {
		panic("swifft: mismatched block and sign-block counts")
	}
	out := make([]Digest, len(blocks))
	chunk := batchChunk()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(blocks); start += chunk {
		start, end := start, start+chunk
		if end > len(blocks) {
			end = len(blocks)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = ComputeSigned(blocks[i], signs[i])
			}
			return nil
		})
	}
	g.Wait()
	return out
}

// CompactMultiple compacts N digests independently (spec §4.8).
func CompactMultiple(digests []Digest) []CompactDigest {
	out := make([]CompactDigest, len(digests))
	for i, d := range digests {
		out[i] = Compact(d)
	}
	return out
}
