// kex.go - Key exchange orchestration: KeyGenA, AgreeB, AgreeA.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

// PrivateKey is Alice's half of a key exchange: the noise polynomial
// she must retain between sending MessageA and receiving Bob's
// MessageB. It holds secret material and must be discarded (its
// Zeroize method called, or simply dropped after AgreeA returns) once
// the exchange completes.
type PrivateKey struct {
	sk Polynomial
}

// Zeroize overwrites the private key's secret coefficients. Safe to
// call more than once.
func (k *PrivateKey) Zeroize() {
	k.sk.zeroize()
}

// MessageA is the first message of the exchange, sent from Alice to
// Bob: her public value plus the seed Bob needs to regenerate the
// shared public polynomial `a`.
type MessageA [MessageABytes]byte

// MessageB is the second message of the exchange, sent from Bob back
// to Alice: his public value plus his reconciliation vector.
type MessageB [MessageBBytes]byte

// SharedSecret is the 256-bit key both parties derive. Both sides
// obtain byte-identical values except with negligible probability (the
// reconciliation mechanism's decoding failure rate).
type SharedSecret [SharedSecretSize]byte

// Zeroize overwrites the shared secret. Safe to call more than once.
func (s *SharedSecret) Zeroize() {
	for i := range s {
		s[i] = 0
	}
}

// KeyGenA runs Alice's half of key generation: it samples a fresh seed
// and noise, derives her public value, and returns both the private
// key she must hold onto until AgreeA and the message to send Bob.
func KeyGenA(suite *Suite) (*PrivateKey, *MessageA, error) {
	if st := suite.validate(); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	var seed [SeedBytes]byte
	if st := suite.RandomBytes(seed[:]); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	var errorSeed [ErrorSeedBytes]byte
	if st := suite.RandomBytes(errorSeed[:]); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}
	defer zeroizeBytes(errorSeed[:])

	var a Polynomial
	if st := generateA(suite, &a, &seed); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	priv := &PrivateKey{}
	if st := getError(suite, &priv.sk, &errorSeed, 0); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	var e Polynomial
	if st := getError(suite, &e, &errorSeed, 1); st != StatusSuccess {
		priv.Zeroize()
		return nil, nil, newStatusError(st)
	}
	defer e.zeroize()

	priv.sk.ntt()
	e.ntt()
	e.scale(&e, 3)
	e.pmuladd(&a, &priv.sk)
	a.copyFrom(&e)

	msg := &MessageA{}
	encodeA(&a, &seed, msg[:])

	return priv, msg, nil
}

// AgreeB runs Bob's half of the exchange: given Alice's message, it
// samples Bob's own noise, derives his public value and reconciliation
// vector, and returns both his message to send Alice and the shared
// secret he has already settled on.
func AgreeB(suite *Suite, msgA *MessageA) (*MessageB, *SharedSecret, error) {
	if st := suite.validate(); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	var pkA Polynomial
	var seed [SeedBytes]byte
	decodeA(msgA[:], &pkA, &seed)

	var errorSeed [ErrorSeedBytes]byte
	if st := suite.RandomBytes(errorSeed[:]); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}
	defer zeroizeBytes(errorSeed[:])

	var a Polynomial
	if st := generateA(suite, &a, &seed); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	var skB, e Polynomial
	if st := getError(suite, &skB, &errorSeed, 0); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}
	defer skB.zeroize()
	if st := getError(suite, &e, &errorSeed, 1); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	skB.ntt()
	e.ntt()
	e.scale(&e, 3)
	e.pmuladd(&a, &skB)
	a.copyFrom(&e)

	if st := getError(suite, &e, &errorSeed, 2); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}
	defer e.zeroize()
	e.ntt()
	e.scale(&e, 81)

	var v Polynomial
	v.copyFrom(&e)
	v.pmuladd(&pkA, &skB)
	v.invNtt()
	defer v.zeroize()

	var rvec [paramN]uint32
	if st := helpRec(&v, &errorSeed, 3, suite, &rvec); st != StatusSuccess {
		return nil, nil, newStatusError(st)
	}

	secret := &SharedSecret{}
	rec(&v, &rvec, (*[SharedSecretSize]byte)(secret))

	msgB := &MessageB{}
	encodeB(&a, &rvec, msgB[:])

	return msgB, secret, nil
}

// AgreeA runs the final step of Alice's half of the exchange: given
// Bob's message and her own retained private key, it recovers the same
// shared secret Bob already derived.
func AgreeA(priv *PrivateKey, msgB *MessageB) (*SharedSecret, error) {
	var u Polynomial
	var rvec [paramN]uint32
	decodeB(msgB[:], &u, &rvec)

	u.pmul(&priv.sk, &u)
	u.invNtt()
	defer u.zeroize()

	secret := &SharedSecret{}
	rec(&u, &rvec, (*[SharedSecretSize]byte)(secret))

	return secret, nil
}

func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
