// codec.go - Packed wire encoding of polynomials and messages.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// encode14 packs p's paramN coefficients into PolyBytes bytes, four
// coefficients (4*14 = 56 bits) to seven little-endian bytes at a time.
func encode14(p *Polynomial, out []byte) {
	i := 0
	for j := 0; j < paramN; j += 4 {
		c0 := p.coeffs[j]
		c1 := p.coeffs[j+1]
		c2 := p.coeffs[j+2]
		c3 := p.coeffs[j+3]

		out[i] = byte(c0 & 0xff)
		out[i+1] = byte(c0>>8) | byte((c1&0x03)<<6)
		out[i+2] = byte((c1 >> 2) & 0xff)
		out[i+3] = byte(c1>>10) | byte((c2&0x0f)<<4)
		out[i+4] = byte((c2 >> 4) & 0xff)
		out[i+5] = byte(c2>>12) | byte((c3&0x3f)<<2)
		out[i+6] = byte(c3 >> 6)
		i += 7
	}
}

// decode14 is the exact inverse of encode14.
func decode14(in []byte, p *Polynomial) {
	i := 0
	for j := 0; j < paramN; j += 4 {
		p.coeffs[j] = uint16(in[i]) | (uint16(in[i+1]&0x3f) << 8)
		p.coeffs[j+1] = uint16(in[i+1]>>6) | (uint16(in[i+2]) << 2) | (uint16(in[i+3]&0x0f) << 10)
		p.coeffs[j+2] = uint16(in[i+3]>>4) | (uint16(in[i+4]) << 4) | (uint16(in[i+5]&0x03) << 12)
		p.coeffs[j+3] = uint16(in[i+5]>>2) | (uint16(in[i+6]) << 6)
		i += 7
	}
}

// encodeA packs Alice's message: a PolyBytes-byte polynomial followed
// by the SeedBytes-byte seed for the public polynomial `a`. out must
// have length MessageABytes.
func encodeA(pk *Polynomial, seed *[SeedBytes]byte, out []byte) {
	encode14(pk, out[:PolyBytes])
	copy(out[PolyBytes:], seed[:])
}

// decodeA is the exact inverse of encodeA.
func decodeA(in []byte, pk *Polynomial, seed *[SeedBytes]byte) {
	decode14(in[:PolyBytes], pk)
	copy(seed[:], in[PolyBytes:])
}

// encodeB packs Bob's message: a PolyBytes-byte polynomial followed by
// the RecBytes-byte packed reconciliation vector, four 2-bit
// reconciliation values per byte. out must have length MessageBBytes.
func encodeB(pk *Polynomial, rvec *[paramN]uint32, out []byte) {
	encode14(pk, out[:PolyBytes])

	i := 0
	for j := 0; j < paramN/4; j++ {
		out[PolyBytes+j] = byte(rvec[i]) | byte(rvec[i+1]<<2) | byte(rvec[i+2]<<4) | byte(rvec[i+3]<<6)
		i += 4
	}
}

// decodeB is the exact inverse of encodeB.
func decodeB(in []byte, pk *Polynomial, rvec *[paramN]uint32) {
	decode14(in[:PolyBytes], pk)

	i := 0
	for j := 0; j < paramN/4; j++ {
		b := in[PolyBytes+j]
		rvec[i] = uint32(b & 0x03)
		rvec[i+1] = uint32((b >> 2) & 0x03)
		rvec[i+2] = uint32((b >> 4) & 0x03)
		rvec[i+3] = uint32(b >> 6)
		i += 4
	}
}
