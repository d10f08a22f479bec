// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package token abstracts issuance and verification of the opaque
// signed session tokens. Tokens are verifiable without a storage
// round trip; the JWT-backed implementation lives in
// pkg/adapter/auth/jwt.
package token

import "errors"

// ErrInvalidToken reports a token which is malformed, has a bad
// signature, or is expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by a session token.
type Claims struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// Issuer creates and verifies signed session tokens.
type Issuer interface {
	// Issue signs a token embedding the given claims. The token
	// expires a fixed duration (configured on the implementation)
	// after issuance.
	Issue(c Claims) (string, error)

	// Verify checks the signature and expiry of tok and returns the
	// embedded claims, or ErrInvalidToken.
	Verify(tok string) (*Claims, error)
}
