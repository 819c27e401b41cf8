// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Karpushin

// Package crypto provides the password-hashing primitives used by the user
// service. Plaintext passwords never cross the persistence boundary: they
// are hashed here, once, before storage.
package crypto

// PasswordHasher hashes plaintext passwords with a memory-hard scheme and
// verifies candidate passwords against stored hashes.
type PasswordHasher interface {
	// Hash derives a self-describing encoded hash from a plaintext password.
	// The result embeds the algorithm parameters and a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash. The
	// comparison is constant-time over the derived keys.
	Verify(password, encodedHash string) (bool, error)
}
