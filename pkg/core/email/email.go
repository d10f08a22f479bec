// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package email abstracts the outgoing mail capability. The core only
// triggers notifications; transport, templating details, and retries
// are adapter concerns.
package email

import "context"

// Sender delivers account related mails to customers.
type Sender interface {
	// SendWelcome mails the verification code to a freshly registered
	// customer. It blocks until the mail is handed to the transport;
	// callers which must not wait should invoke it from a goroutine.
	SendWelcome(ctx context.Context, to, name, code string) error
}
