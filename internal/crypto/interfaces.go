// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto turns account passwords into the digests kept by the user
// store and checks login attempts against them.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives a storable digest from a plaintext password.
//
// The plaintext never leaves the hasher: callers store the digest only and
// compare login attempts through Verify.
type PasswordHasher interface {
	// Hash returns the digest of plain.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches digest. A malformed digest is a
	// mismatch, not an error.
	Verify(digest, plain string) bool
}
