// codec_test.go
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

import (
	"math/rand"
	"testing"
)

func randomPolynomial(rng *rand.Rand) *Polynomial {
	p := &Polynomial{}
	for i := range p.coeffs {
		p.coeffs[i] = uint16(rng.Intn(paramQ))
	}
	return p
}

func TestEncode14RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := randomPolynomial(rng)

	buf := make([]byte, PolyBytes)
	encode14(p, buf)

	var got Polynomial
	decode14(buf, &got)

	if got.coeffs != p.coeffs {
		t.Fatalf("decode14(encode14(p)) != p")
	}
}

func TestEncodeDecodeA(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := randomPolynomial(rng)
	var seed [SeedBytes]byte
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	buf := make([]byte, MessageABytes)
	encodeA(p, &seed, buf)

	var gotPoly Polynomial
	var gotSeed [SeedBytes]byte
	decodeA(buf, &gotPoly, &gotSeed)

	if gotPoly.coeffs != p.coeffs {
		t.Fatal("decodeA recovered the wrong polynomial")
	}
	if gotSeed != seed {
		t.Fatal("decodeA recovered the wrong seed")
	}
}

func TestEncodeDecodeB(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := randomPolynomial(rng)
	var rvec [paramN]uint32
	for i := range rvec {
		rvec[i] = uint32(rng.Intn(4))
	}

	buf := make([]byte, MessageBBytes)
	encodeB(p, &rvec, buf)

	var gotPoly Polynomial
	var gotRvec [paramN]uint32
	decodeB(buf, &gotPoly, &gotRvec)

	if gotPoly.coeffs != p.coeffs {
		t.Fatal("decodeB recovered the wrong polynomial")
	}
	if gotRvec != rvec {
		t.Fatal("decodeB recovered the wrong reconciliation vector")
	}
}
