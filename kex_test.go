// kex_test.go - Key exchange integration tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ringlwe

import "testing"

func BenchmarkKeyGenA(b *testing.B) {
	suite := DefaultSuite()
	for i := 0; i < b.N; i++ {
		KeyGenA(suite)
	}
}

func BenchmarkAgreeB(b *testing.B) {
	suite := DefaultSuite()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		_, msgA, err := KeyGenA(suite)
		if err != nil {
			b.Fatalf("KeyGenA failed: %v", err)
		}
		b.StartTimer()

		if _, _, err := AgreeB(suite, msgA); err != nil {
			b.Fatalf("AgreeB failed: %v", err)
		}
	}
}

func BenchmarkAgreeA(b *testing.B) {
	suite := DefaultSuite()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		privA, msgA, err := KeyGenA(suite)
		if err != nil {
			b.Fatalf("KeyGenA failed: %v", err)
		}
		msgB, _, err := AgreeB(suite, msgA)
		if err != nil {
			b.Fatalf("AgreeB failed: %v", err)
		}
		b.StartTimer()

		if _, err := AgreeA(privA, msgB); err != nil {
			b.Fatalf("AgreeA failed: %v", err)
		}
	}
}

// TestIntegration runs the full three-message exchange many times and
// checks that both parties land on the same shared secret. The
// reconciliation mechanism's failure probability is negligible, so
// every trial is expected to agree; any mismatch points at an
// implementation error.
func TestIntegration(t *testing.T) {
	suite := DefaultSuite()
	const trials = 256
	mismatches := 0

	for i := 0; i < trials; i++ {
		privA, msgA, err := KeyGenA(suite)
		if err != nil {
			t.Fatalf("KeyGenA failed: %v", err)
		}

		msgB, secretB, err := AgreeB(suite, msgA)
		if err != nil {
			t.Fatalf("AgreeB failed: %v", err)
		}

		secretA, err := AgreeA(privA, msgB)
		if err != nil {
			t.Fatalf("AgreeA failed: %v", err)
		}

		if *secretA != *secretB {
			mismatches++
		}
	}

	if mismatches != 0 {
		t.Fatalf("%d/%d trials produced mismatched shared secrets, want none", mismatches, trials)
	}
}

func TestMessageSizes(t *testing.T) {
	suite := DefaultSuite()
	_, msgA, err := KeyGenA(suite)
	if err != nil {
		t.Fatalf("KeyGenA failed: %v", err)
	}
	if len(msgA) != MessageABytes {
		t.Fatalf("len(MessageA) = %d, want %d", len(msgA), MessageABytes)
	}

	msgB, _, err := AgreeB(suite, msgA)
	if err != nil {
		t.Fatalf("AgreeB failed: %v", err)
	}
	if len(msgB) != MessageBBytes {
		t.Fatalf("len(MessageB) = %d, want %d", len(msgB), MessageBBytes)
	}
}

func TestKeyGenARejectsIncompleteSuite(t *testing.T) {
	suite := &Suite{}
	if _, _, err := KeyGenA(suite); err == nil {
		t.Fatal("KeyGenA with an empty Suite should fail")
	}
}
