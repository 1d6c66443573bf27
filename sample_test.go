// sample_test.go
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

import "testing"

func TestGetErrorRangeAndDeterminism(t *testing.T) {
	suite := DefaultSuite()
	var seed [ErrorSeedBytes]byte
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	var a, b Polynomial
	if st := getError(suite, &a, &seed, 0); st != StatusSuccess {
		t.Fatalf("getError: %v", st)
	}
	if st := getError(suite, &b, &seed, 0); st != StatusSuccess {
		t.Fatalf("getError: %v", st)
	}
	if a.coeffs != b.coeffs {
		t.Fatal("getError is not deterministic for identical inputs")
	}

	for i, c := range a.coeffs {
		signed := int32(c)
		if signed > paramQ/2 {
			signed -= paramQ
		}
		if signed < -paramK || signed > paramK {
			t.Fatalf("coefficient %d = %d out of centered binomial range [-%d, %d]", i, signed, paramK, paramK)
		}
	}
}

func TestGetErrorNoncesDiffer(t *testing.T) {
	suite := DefaultSuite()
	var seed [ErrorSeedBytes]byte
	var a, b Polynomial
	getError(suite, &a, &seed, 0)
	getError(suite, &b, &seed, 1)
	if a.coeffs == b.coeffs {
		t.Fatal("getError produced identical output for distinct nonces")
	}
}

func TestGenerateAUniformRange(t *testing.T) {
	suite := DefaultSuite()
	var seed [SeedBytes]byte
	for i := range seed {
		seed[i] = byte(i)
	}

	var a Polynomial
	if st := generateA(suite, &a, &seed); st != StatusSuccess {
		t.Fatalf("generateA: %v", st)
	}
	for i, c := range a.coeffs {
		if c >= paramQ {
			t.Fatalf("coefficient %d = %d not in [0, paramQ)", i, c)
		}
	}

	var b Polynomial
	generateA(suite, &b, &seed)
	if a.coeffs != b.coeffs {
		t.Fatal("generateA is not deterministic for identical seeds")
	}
}
