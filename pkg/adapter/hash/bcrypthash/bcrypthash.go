// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bcrypthash is an adapter wrapping the bcrypt key derivation
// function behind the core hash.Hasher interface. Hashes embed their
// own salt and cost, so Compare needs no extra state and previously
// stored hashes keep working if DefaultCost is raised later.
package bcrypthash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used for newly created hashes.
const DefaultCost = 10

// Hasher computes and verifies bcrypt password hashes.
// The zero value is not usable. Use New.
type Hasher struct {
	cost int
}

// New instantiates a Hasher using the DefaultCost cost factor.
func New() Hasher {
	return Hasher{cost: DefaultCost}
}

// Hash derives a salted bcrypt hash from the given plaintext password.
func (h Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("generating bcrypt hash: %w", err)
	}
	return string(b), nil
}

// Compare reports whether the plaintext password matches the given
// bcrypt hash. A mismatch is a false result, not an error; errors are
// reserved for malformed hashes.
func (h Hasher) Compare(hashed, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("comparing bcrypt hash: %w", err)
	}
}
