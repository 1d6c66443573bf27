// suite.go - Collaborator capability record.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

import (
	"crypto/rand"
	"io"

	"gitlab.com/yawning/chacha20.git"
	"golang.org/x/crypto/sha3"
)

// RandomBytesFunc fills buf with cryptographically secure random bytes,
// returning a non-success Status on failure.
type RandomBytesFunc func(buf []byte) Status

// ExtendableOutputFunc derives len(out) bytes of pseudorandom output from
// seed, as by a XOF such as SHAKE-128. The mapping from (seed, len(out))
// to out must be deterministic: both parties in a key exchange rely on
// this to agree on the same public polynomial `a` from the same seed.
type ExtendableOutputFunc func(out, seed []byte) Status

// StreamOutputFunc derives len(out) bytes of pseudorandom output from a
// key and an 8-byte nonce, as by a stream cipher used as a PRF. Distinct
// nonces under the same key must yield independent streams; this is used
// to domain-separate a single error seed into several independent noise
// polynomials.
type StreamOutputFunc func(out []byte, key *[ErrorSeedBytes]byte, nonce uint64) Status

// Suite bundles the three collaborator capabilities a key exchange
// operation needs. It is a plain record of function fields rather than
// package-level state so that concurrent, independent exchanges never
// share mutable globals and so tests can substitute deterministic or
// failure-injecting collaborators without disturbing production code.
type Suite struct {
	RandomBytes      RandomBytesFunc
	ExtendableOutput ExtendableOutputFunc
	StreamOutput     StreamOutputFunc
}

// DefaultSuite returns the production Suite: crypto/rand for
// RandomBytes, SHAKE-128 for ExtendableOutput, and ChaCha20 for
// StreamOutput. This mirrors the collaborators the reference
// implementation wires up by default, minus any hardware-specific
// acceleration path.
func DefaultSuite() *Suite {
	return &Suite{
		RandomBytes:      defaultRandomBytes,
		ExtendableOutput: defaultExtendableOutput,
		StreamOutput:     defaultStreamOutput,
	}
}

func defaultRandomBytes(buf []byte) Status {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return StatusErrorGeneric
	}
	return StatusSuccess
}

func defaultExtendableOutput(out, seed []byte) Status {
	h := sha3.NewShake128()
	if _, err := h.Write(seed); err != nil {
		return StatusErrorGeneric
	}
	if _, err := io.ReadFull(h, out); err != nil {
		return StatusErrorGeneric
	}
	return StatusSuccess
}

func defaultStreamOutput(out []byte, key *[ErrorSeedBytes]byte, nonce uint64) Status {
	var nonceBytes [nonceSeedBytes]byte
	for i := range nonceBytes {
		nonceBytes[i] = byte(nonce >> (8 * uint(i)))
	}

	c, err := chacha20.New(key[:], nonceBytes[:])
	if err != nil {
		return StatusErrorGeneric
	}
	defer c.Reset()

	for i := range out {
		out[i] = 0
	}
	c.KeyStream(out)
	return StatusSuccess
}

// validate reports whether every collaborator field is populated.
func (s *Suite) validate() Status {
	if s == nil || s.RandomBytes == nil || s.ExtendableOutput == nil || s.StreamOutput == nil {
		return StatusErrorInvalidParameter
	}
	return StatusSuccess
}
