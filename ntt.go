// ntt.go - Negacyclic number-theoretic transform over Z_q[X]/(X^N+1).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// paramQ - 1 = 12288 = 2^12 * 3, which is divisible by 2*paramN = 2048,
// so a primitive 2*paramN-th root of unity psi exists mod paramQ and the
// ring supports a *complete* negacyclic NTT: every butterfly stage can
// run all the way down to a block length of one, with no leftover
// irreducible quadratic factors to multiply out separately. The twiddle
// table below folds the psi-twist directly into the butterfly network
// (each zetas[k] is already a suitable power of psi), so no separate
// pre/post multiplication by powers of psi is needed around a plain
// cyclic NTT.
//
// zetas[k] = psi^brv(k) mod paramQ, where brv is a log2(paramN)-bit
// bit-reversal, for k in [1, paramN). inverseNTT's descending-k
// Gentleman-Sande schedule pairs each butterfly with the *negation* of
// the same forward butterfly's twiddle, not its multiplicative inverse
// (negating undoes a Cooley-Tukey butterfly; inverting does not, since
// the two networks visit twiddles in opposite order within a stage), so
// zetasInv[k] = paramQ - zetas[k]. Both tables are derived once at
// package initialization from the scalar root in params.go rather than
// shipped as literal constants.
var (
	zetas    [paramN]uint16
	zetasInv [paramN]uint16
)

const nttBits = 10 // log2(paramN)

func init() {
	for k := 1; k < paramN; k++ {
		r := bitrevN(uint32(k))
		zetas[k] = uint16(powMod(paramPsi, r))
		zetasInv[k] = uint16(paramQ) - zetas[k]
	}
}

// bitrevN reverses the low nttBits bits of x.
func bitrevN(x uint32) uint32 {
	var r uint32
	for i := 0; i < nttBits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// powMod computes base^exp mod paramQ by repeated squaring.
func powMod(base, exp uint32) uint32 {
	result := uint32(1)
	base %= paramQ
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % paramQ
		}
		exp >>= 1
		base = (base * base) % paramQ
	}
	return result
}

// forwardNTT transforms a from coefficient representation into the
// evaluation (NTT) domain in place, using decimation-in-time
// Cooley-Tukey butterflies. Input is in standard order; output is in
// bit-reversed order, matching the order zetasInv expects on the way
// back.
func forwardNTT(a *[paramN]uint16) {
	k := 1
	for length := paramN / 2; length >= 1; length >>= 1 {
		for start := 0; start < paramN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := mulMod(zeta, a[j+length])
				a[j+length] = subMod(a[j], t)
				a[j] = addMod(a[j], t)
			}
		}
	}
}

// inverseNTT transforms a from the evaluation domain back into
// coefficient representation in place, using decimation-in-frequency
// Gentleman-Sande butterflies that exactly undo forwardNTT's network,
// followed by a scaling pass by N^-1. Input is in bit-reversed order;
// output is in standard order.
func inverseNTT(a *[paramN]uint16) {
	k := paramN - 1
	for length := 1; length < paramN; length <<= 1 {
		for start := 0; start < paramN; start += 2 * length {
			zetaInv := zetasInv[k]
			k--
			for j := start; j < start+length; j++ {
				t := a[j]
				a[j] = addMod(t, a[j+length])
				a[j+length] = subMod(t, a[j+length])
				a[j+length] = mulMod(zetaInv, a[j+length])
			}
		}
	}
	for j := range a {
		a[j] = mulMod(a[j], uint16(paramNInv))
	}
}
