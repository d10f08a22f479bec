// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Customer models a registered (or still unverified) customer.
// The PasswordHash field holds the one-way salted hash of the login
// password and must never leak to the wire, hence its json:"-" tag.
// VerificationCode is nil once no code is associated with the account;
// it is kept after a successful verification since IsVerified alone
// decides whether further verification attempts are accepted.
type Customer struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	PasswordHash     string  `json:"-"`
	PhoneNumber      string  `json:"phoneNumber"`
	Address          string  `json:"address"`
	IsAdmin          bool    `json:"isAdmin"`
	VerificationCode *string `json:"verificationCode"`
	IsVerified       bool    `json:"isVerified"`
}

// CustomerPatch lists the updatable customer columns.
// Nil fields are skipped. The password hash is deliberately not
// patchable through the generic profile update; credentials belong to
// the auth use case.
type CustomerPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	IsAdmin     *bool
}
