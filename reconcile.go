// reconcile.go - Lattice reconciliation: HelpRec, LDDecode, Rec.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// helpRec computes a reconciliation vector from x, one of the two
// parties' nearly-equal ring elements, plus fresh randomness drawn
// from errorSeed. rvec has paramN entries, each in {0,1,2,3}, packed
// two bits at a time by encodeB.
//
// The arithmetic here is deliberately carried out in uint32 rather
// than with an explicit sign/comparison, mirroring the reference
// implementation: each "(value - threshold) >> 31" is a logical shift
// of an unsigned subtraction, which is 1 exactly when value is below
// threshold (the subtraction wraps past zero) and 0 otherwise. That
// makes v0[j] the count of thresholds x's doubled, debiased value
// meets or exceeds, not "4 minus" that count.
func helpRec(x *Polynomial, errorSeed *[ErrorSeedBytes]byte, nonce byte, suite *Suite, rvec *[paramN]uint32) Status {
	var randomBits [32]byte
	if st := suite.StreamOutput(randomBits[:], errorSeed, uint64(nonce)<<8); st != StatusSuccess {
		return st
	}

	for i := 0; i < 256; i++ {
		bit := uint32(1) & (uint32(randomBits[i>>3]) >> uint(i&0x07))

		// rvec[i], rvec[i+256], rvec[i+512], rvec[i+768] hold the four
		// doubled, debiased coefficients below; they're scratch at this
		// point and get overwritten with the final {0,1,2,3} vote further
		// down once v0/v1 settle.
		rvec[i] = (uint32(x.coeffs[i]) << 1) - bit
		rvec[i+256] = (uint32(x.coeffs[i+256]) << 1) - bit
		rvec[i+512] = (uint32(x.coeffs[i+512]) << 1) - bit
		rvec[i+768] = (uint32(x.coeffs[i+768]) << 1) - bit

		var v0, v1 [4]uint32
		v0[0], v0[1], v0[2], v0[3] = 4, 4, 4, 4
		v1[0], v1[1], v1[2], v1[3] = 3, 3, 3, 3

		var norm uint32
		for j := 0; j < 4; j++ {
			y := rvec[i+256*j] // re-reading the scratch value written above
			v0[j] -= (y - paramQ4) >> 31
			v0[j] -= (y - paramQ3_4) >> 31
			v0[j] -= (y - paramQ5_4) >> 31
			v0[j] -= (y - paramQ7_4) >> 31
			v1[j] -= (y - paramQ2) >> 31
			v1[j] -= (y - paramQ) >> 31
			v1[j] -= (y - paramQ3_2) >> 31
			norm += absInt32(2*int32(y) - paramQ*int32(v0[j]))
		}

		// mask is all-ones when norm < paramQ, all-zeros otherwise.
		mask := uint32(int32(norm-paramQ) >> 31)
		v0[0] = (mask & (v0[0] ^ v1[0])) ^ v1[0]
		v0[1] = (mask & (v0[1] ^ v1[1])) ^ v1[1]
		v0[2] = (mask & (v0[2] ^ v1[2])) ^ v1[2]
		v0[3] = (mask & (v0[3] ^ v1[3])) ^ v1[3]

		rvec[i] = (v0[0] - v0[3]) & 0x03
		rvec[i+256] = (v0[1] - v0[3]) & 0x03
		rvec[i+512] = (v0[2] - v0[3]) & 0x03
		rvec[i+768] = ((v0[3] << 1) + (1 &^ mask)) & 0x03
	}

	return StatusSuccess
}

// absInt32 returns the absolute value of value as a uint32, computed
// branchlessly via a sign-extended mask.
func absInt32(value int32) uint32 {
	mask := uint32(value >> 31)
	v := uint32(value)
	return (mask ^ v) - mask
}

// ldDecode performs low-density lattice decoding on four coordinates
// of a reconciled value, returning the single bit they encode.
func ldDecode(t *[4]int32) uint32 {
	cneg := int32(-8 * paramQ)

	var norm uint32
	for i := 0; i < 4; i++ {
		mask1 := uint32(t[i] >> 31)
		mask2 := uint32((4*paramQ - int32(absInt32(t[i]))) >> 31)
		value := (mask1 & uint32(8*paramQ^cneg)) ^ uint32(cneg)
		norm += absInt32(t[i] + int32(mask2&value))
	}

	return ((uint32(8*paramQ) - norm) >> 31) ^ 1
}

// rec recovers a SharedSecretSize-byte key from x (a party's own ring
// element) and rvec (the other party's reconciliation vector).
func rec(x *Polynomial, rvec *[paramN]uint32, key *[SharedSecretSize]byte) {
	for i := range key {
		key[i] = 0
	}

	for i := 0; i < 256; i++ {
		var t [4]int32
		t[0] = 8*int32(x.coeffs[i]) - (2*int32(rvec[i])+int32(rvec[i+768]))*paramQ
		t[1] = 8*int32(x.coeffs[i+256]) - (2*int32(rvec[i+256])+int32(rvec[i+768]))*paramQ
		t[2] = 8*int32(x.coeffs[i+512]) - (2*int32(rvec[i+512])+int32(rvec[i+768]))*paramQ
		t[3] = 8*int32(x.coeffs[i+768]) - int32(rvec[i+768])*paramQ

		key[i>>3] |= byte(ldDecode(&t) << uint(i&0x07))
	}
}
