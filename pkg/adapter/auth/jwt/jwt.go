// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package jwt is an adapter issuing and verifying HS256-signed JSON
// web tokens behind the core token.Issuer interface. Verification
// failures of any kind, including a bad signature, a non-HMAC alg
// header, and an expired token, collapse into token.ErrInvalidToken
// so callers cannot leak the distinction to clients.
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/dev-m-josh/carhire/pkg/core/token"
)

// DefaultTTL is the token lifetime used when no explicit TTL is
// configured.
const DefaultTTL = 24 * time.Hour

// Issuer signs and verifies session tokens with a shared HMAC secret.
// Use New for instantiation.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New instantiates an Issuer with the given shared secret and token
// lifetime. A non-positive ttl falls back to DefaultTTL.
func New(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

type sessionClaims struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwtv5.RegisteredClaims
}

// Issue signs the given claims into a compact HS256 token which
// expires after the configured lifetime.
func (i *Issuer) Issue(c token.Claims) (string, error) {
	now := i.now()
	sc := sessionClaims{
		UserID:  c.UserID,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(i.ttl)),
		},
	}
	t := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, sc)
	s, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return s, nil
}

// Verify parses and validates a compact token string, returning the
// session claims it carries. Any validation failure is reported as
// token.ErrInvalidToken.
func (i *Issuer) Verify(tok string) (*token.Claims, error) {
	sc := &sessionClaims{}
	parsed, err := jwtv5.ParseWithClaims(
		tok, sc,
		func(t *jwtv5.Token) (any, error) {
			if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf(
					"unexpected signing method: %v", t.Header["alg"],
				)
			}
			return i.secret, nil
		},
		jwtv5.WithTimeFunc(i.now),
		jwtv5.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !parsed.Valid {
		return nil, token.ErrInvalidToken
	}
	return &token.Claims{
		UserID:  sc.UserID,
		Email:   sc.Email,
		IsAdmin: sc.IsAdmin,
	}, nil
}
