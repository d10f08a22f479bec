// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Registration carries the plaintext registration data as accepted by
// the auth use case. The password is hashed before anything is
// persisted; Registration itself is never stored or logged.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// Session pairs the customer with a freshly issued session token.
// It is the result of both registration and login.
type Session struct {
	User  Customer `json:"user"`
	Token string   `json:"token"`
}
