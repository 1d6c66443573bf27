// doc.go - Package documentation.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to ringlwe, using the Creative Commons
// "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package ringlwe implements a key exchange based on the Ring Learning
// with Errors problem. It is a Go rendition of the Microsoft
// LatticeCrypto Ring-LWE key exchange (N=1024, q=12289), following its
// older v0/v1-threshold reconciliation mechanism rather than the later
// NewHope f/g-based revision.
//
// A typical exchange looks like:
//
//	suite := ringlwe.DefaultSuite()
//
//	privA, msgA, err := ringlwe.KeyGenA(suite)
//	// send msgA to Bob
//
//	msgB, secretB, err := ringlwe.AgreeB(suite, msgA)
//	// send msgB to Alice
//
//	secretA, err := ringlwe.AgreeA(privA, msgB)
//	// secretA and secretB now agree, with overwhelming probability
package ringlwe
