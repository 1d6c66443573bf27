// sample.go - Error sampling and uniform polynomial generation.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

import "encoding/binary"

// maxUniformBytes bounds how far generateA will grow its request to the
// ExtendableOutput collaborator before giving up. Rejection sampling a
// 14-bit value into [0, paramQ) accepts with probability paramQ/16384,
// about 75%, so exhausting even one doubling from a generous initial
// request should never happen outside of a broken collaborator.
const maxUniformBytes = 1 << 20

// getError fills out with paramN coefficients drawn from a centered
// binomial distribution with parameter paramK, derived from errorSeed
// and nonce via the suite's StreamOutput collaborator. Coefficients are
// stored in canonical [0, paramQ) form (a centered binomial value e is
// stored as e mod paramQ); the caller is expected to run the result
// through the NTT before combining it with other NTT-domain values.
//
// nonce occupies byte 0 of the 8-byte value passed to StreamOutput,
// matching the reference sampler's nonce placement.
func getError(suite *Suite, out *Polynomial, errorSeed *[ErrorSeedBytes]byte, nonce byte) Status {
	stream := make([]byte, 3*paramN)
	if st := suite.StreamOutput(stream, errorSeed, uint64(nonce)); st != StatusSuccess {
		return st
	}

	const quarter = paramN / 4
	const half = paramN / 2

	for i := 0; i < quarter; i++ {
		w0 := binary.LittleEndian.Uint32(stream[4*i:])
		w1 := binary.LittleEndian.Uint32(stream[4*(i+quarter):])
		w2 := binary.LittleEndian.Uint32(stream[4*(i+2*quarter):])

		var acc1, acc2 uint32
		for j := uint(0); j < 8; j++ {
			acc1 += (w0 >> j) & 0x01010101
			acc2 += (w1 >> j) & 0x01010101
		}
		for j := uint(0); j < 4; j++ {
			temp := w2 >> j
			acc1 += temp & 0x01010101
			acc2 += (temp >> 4) & 0x01010101
		}

		e0 := int32(byte(acc1)) - int32(byte(acc1>>8))
		e1 := int32(byte(acc1>>16)) - int32(byte(acc1>>24))
		e2 := int32(byte(acc2)) - int32(byte(acc2>>8))
		e3 := int32(byte(acc2>>16)) - int32(byte(acc2>>24))

		out.coeffs[2*i] = centerToCanonical(e0)
		out.coeffs[2*i+1] = centerToCanonical(e1)
		out.coeffs[2*i+half] = centerToCanonical(e2)
		out.coeffs[2*i+half+1] = centerToCanonical(e3)
	}

	return StatusSuccess
}

// centerToCanonical maps a centered binomial sample (known to lie in
// [-paramK, paramK]) to its canonical representative mod paramQ.
func centerToCanonical(e int32) uint16 {
	v := int32(paramQ) + e
	if v >= paramQ {
		v -= paramQ
	}
	return uint16(v)
}

// generateA fills out with paramN coefficients drawn uniformly from
// [0, paramQ) by expanding seed with the suite's ExtendableOutput
// collaborator and rejection-sampling 14-bit little-endian values out
// of the resulting stream. The caller treats the result as already
// being in the NTT domain; generateA itself performs no transform.
func generateA(suite *Suite, out *Polynomial, seed *[SeedBytes]byte) Status {
	for size := 4096; size <= maxUniformBytes; size *= 2 {
		buf := make([]byte, size)
		if st := suite.ExtendableOutput(buf, seed[:]); st != StatusSuccess {
			return st
		}

		ctr := 0
		for pos := 0; ctr < paramN && pos+2 <= len(buf); pos += 2 {
			val := binary.LittleEndian.Uint16(buf[pos:]) & 0x3fff
			if val < paramQ {
				out.coeffs[ctr] = val
				ctr++
			}
		}
		if ctr == paramN {
			return StatusSuccess
		}
	}
	return StatusErrorTooManyIterations
}
