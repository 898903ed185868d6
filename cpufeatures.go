package swifft

import "github.com/klauspost/cpuid/v2"

// batchChunk returns how many blocks each fan-out goroutine in
// ComputeMultiple/ComputeMultipleSigned should claim per turn. Spec §9
// flags the 64-lane inner loops as a SIMD target; this package has no
// hand-written vector code, but a core wide enough to eventually host one
// (AVX2/NEON) is given a larger per-goroutine batch so the eventual
// vectorised inner loop amortises goroutine overhead over more blocks,
// matching the intent of the "Vectorisation hint" without writing
// assembly today.
func batchChunk() int {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		return 8
	case cpuid.CPU.Supports(cpuid.AVX2), cpuid.CPU.Supports(cpuid.NEON):
		return 4
	default:
		return 1
	}
}

