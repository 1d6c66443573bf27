// params.go - Ring-LWE key exchange parameters.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

const (
	// paramN is the ring dimension; polynomials have exactly this many
	// coefficients.
	paramN = 1024

	// paramQ is the field modulus.
	paramQ = 12289

	// paramK is the width of the centered binomial noise distribution
	// (sum of paramK "plus" bits minus paramK "minus" bits). The error
	// sampler's bit layout draws a full byte (8 bits) of one stream
	// word plus a nibble (4 bits) of a second stream word per lane, so
	// each side of the difference is the sum of 12 fair bits.
	paramK = 12

	// SeedBytes is the size, in bytes, of the seed used to expand the
	// public polynomial `a`.
	SeedBytes = 32

	// ErrorSeedBytes is the size, in bytes, of the seed used to derive
	// all of a party's noise polynomials and (for Bob) the
	// reconciliation randomness.
	ErrorSeedBytes = 32

	// nonceSeedBytes is the size, in bytes, of the nonce passed to
	// StreamOutput.
	nonceSeedBytes = 8

	// PolyBytes is the length, in bytes, of a polynomial packed at 14
	// bits per coefficient (1024*14/8).
	PolyBytes = 1792

	// RecBytes is the length, in bytes, of a packed reconciliation
	// vector (1024*2/8).
	RecBytes = 256

	// MessageABytes is the length, in bytes, of Alice's (the
	// Initiator's) message: a packed polynomial plus the seed for `a`.
	MessageABytes = PolyBytes + SeedBytes

	// MessageBBytes is the length, in bytes, of Bob's (the
	// Responder's) message: a packed polynomial plus the packed
	// reconciliation vector.
	MessageBBytes = PolyBytes + RecBytes

	// SharedSecretSize is the length, in bytes, of the derived shared
	// secret.
	SharedSecretSize = 32
)

// Reconciliation thresholds, named after the quarter-multiples of q they
// represent. These are not simple integer division of paramQ because the
// reference implementation rounds each multiple of q/4 up to the next
// integer (ceiling), not truncates.
const (
	paramQ4  = 3073  // ceil(paramQ / 4)
	paramQ2  = 6145  // ceil(paramQ / 2)
	paramQ3_4 = 9217  // ceil(3*paramQ / 4)
	paramQ5_4 = 15362 // ceil(5*paramQ / 4)
	paramQ3_2 = 18434 // ceil(3*paramQ / 2)
	paramQ7_4 = 21506 // ceil(7*paramQ / 4)
)

// NTT roots of unity mod paramQ for paramN = 1024. psi is a primitive
// 2*paramN-th root of unity; omega = psi^2 is the primitive paramN-th
// root used inside the butterfly network. These four scalars (and their
// role in a complete negacyclic NTT of this size) are confirmed against
// an independent Go transliteration of the same reference algorithm,
// other_examples/WebKit-WebKit__newhope.go.
const (
	paramPsi      = 7
	paramOmega    = 49
	paramOmegaInv = 1254
	paramNInv     = 12277
)
