package swifft

// twiddle holds the precomputed W[k] = omega64^k table used by every
// butterfly stage (spec §4.3): "Precomputation: array W of length N/2 ...
// Stored as a process-wide constant."
var twiddle [n / 2]fieldElement

// twist[i] = psi^i and untwistNorm[i] = psi^(-i) * n^(-1), where
// psi = omega128 (spec §4.4, §9: "Reference choice: psi = 9"). Folding the
// untwist and the 1/n scaling into one table avoids a second pass over the
// coefficients on the inverse path.
var twist [n]fieldElement
var untwistNorm [n]fieldElement

// bitrev6 is the 6-bit (log2(n)=6) bit-reversal permutation used by the
// iterative Cooley-Tukey DIT NTT (spec §4.3 step 1).
var bitrev6 [n]int

func init() {
	for k := 0; k < n/2; k++ {
		twiddle[k] = fieldPow(omega64, k)
	}

	invN := fieldInv(n)
	psiInv := fieldInv(omega128)
	for i := 0; i < n; i++ {
		twist[i] = fieldPow(omega128, i)
		untwistNorm[i] = fieldMul(fieldPow(psiInv, i), invN)
	}

	for k := 0; k < n; k++ {
		r := 0
		v := k
		for b := 0; b < 6; b++ {
			r = (r << 1) | (v & 1)
			v >>= 1
		}
		bitrev6[k] = r
	}
}

// ntt computes the length-64 cyclic NTT Y[k] = sum_j X[j] * omega64^(jk)
// mod p, via the iterative Cooley-Tukey radix-2 decimation-in-time
// butterfly network described in spec §4.3:
//  1. bit-reverse permute the input
//  2. for chunk sizes c = 2, 4, ..., n, butterfly contiguous chunks using
//     the precomputed twiddle table.
func ntt(x Poly) Poly {
	f := bitreversed(x)
	butterflyForward(&f)
	return f
}

// invNTT runs the same butterfly network with omega64^(-1) in place of
// omega64, then scales every coefficient by n^(-1) mod p (spec §4.3).
func invNTT(x Poly) Poly {
	f := invNTTUnscaled(x)
	invN := fieldInv(n)
	for i := range f {
		f[i] = fieldMul(f[i], invN)
	}
	return f
}

// invNTTUnscaled runs the inverse butterfly network without the final
// n^(-1) scaling pass. fftMul and the compression pipeline fold that
// scaling into untwistNorm instead, so they call this directly (spec §4.4).
func invNTTUnscaled(x Poly) Poly {
	f := bitreversed(x)
	omegaInv := fieldInv(omega64)
	butterfly(&f, omegaInv)
	return f
}

// bitreversed returns x with its coefficients permuted into bit-reversed
// index order, the entry point to the iterative DIT butterfly network.
func bitreversed(x Poly) (f Poly) {
	for k := 0; k < n; k++ {
		f[bitrev6[k]] = x[k]
	}
	return f
}

// butterflyForward runs the forward butterfly network using the
// precomputed twiddle table (root = omega64).
func butterflyForward(f *Poly) {
	for size := 2; size <= n; size *= 2 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := twiddle[j*stride]
				a := f[start+j]
				b := fieldMul(w, f[start+j+half])
				f[start+j] = fieldAdd(a, b)
				f[start+j+half] = fieldSub(a, b)
			}
		}
	}
}

// butterfly runs the same radix-2 DIT network as butterflyForward but with
// an arbitrary root (used for the inverse transform, whose root is
// omega64^(-1) rather than the precomputed forward twiddle table).
func butterfly(f *Poly, root fieldElement) {
	for size := 2; size <= n; size *= 2 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := fieldPow(root, j*stride)
				a := f[start+j]
				b := fieldMul(w, f[start+j+half])
				f[start+j] = fieldAdd(a, b)
				f[start+j+half] = fieldSub(a, b)
			}
		}
	}
}

// twistPoly pre-twists P by powers of psi = omega128 so the length-64
// cyclic NTT computes the ring's negacyclic convolution instead (spec
// §4.4).
func twistPoly(pol Poly) (c Poly) {
	for i := range c {
		c[i] = fieldMul(pol[i], twist[i])
	}
	return c
}

// untwistPoly undoes twistPoly and folds in the invNTT's 1/n scaling via
// the combined untwistNorm table (spec §4.4: "implementations may fold
// these two into a single precomputed NORM[i] table").
func untwistPoly(pol Poly) (c Poly) {
	for i := range c {
		c[i] = fieldMul(pol[i], untwistNorm[i])
	}
	return c
}

// fftMul computes P*Q in R via the NTT pipeline: twist, forward NTT,
// Hadamard product, inverse NTT (unscaled), untwist-with-scaling. This
// must match naiveMul bit-for-bit (spec §4.4's correctness obligation,
// §8's testable property naive_mul(P,Q) = fft_mul(P,Q)).
func fftMul(pPoly, qPoly Poly) Poly {
	pHat := ntt(twistPoly(pPoly))
	qHat := ntt(twistPoly(qPoly))
	sHat := hadamard(pHat, qHat)
	return untwistPoly(invNTTUnscaled(sHat))
}
