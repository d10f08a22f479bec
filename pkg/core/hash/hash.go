// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package hash abstracts the one-way password hashing capability, so
// the core use cases stay independent of the concrete algorithm.
// The bcrypt-backed implementation lives in pkg/adapter/hash.
package hash

// Hasher derives and checks one-way salted password hashes.
type Hasher interface {
	// Hash derives a self-contained (salt embedding) hash from the
	// given plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether password matches the encoded hash.
	// A mismatch is a false return, not an error; errors indicate a
	// malformed hash or an operational failure.
	Compare(hashed, password string) (bool, error)
}
