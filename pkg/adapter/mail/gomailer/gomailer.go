// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gomailer is an adapter delivering transactional emails over
// SMTP behind the core email.Sender interface.
package gomailer

import (
	"context"
	"fmt"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	"github.com/dev-m-josh/carhire/pkg/core/log"
)

// Sender delivers emails through a single configured SMTP account.
// Each send dials a fresh connection; the expected volume is one mail
// per registration, so no connection is kept open.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// New instantiates a Sender dialing the given SMTP host and port with
// the given credentials. The from address is used as the envelope and
// header sender of every mail.
func New(host string, port int, username, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

const welcomeBody = `<h2>Welcome to CarHire, %s!</h2>
<p>Thank you for registering. Your verification code is:</p>
<p><b>%s</b></p>
<p>Submit this code together with your email address to verify your
account.</p>`

// SendWelcome sends the post-registration welcome mail carrying the
// account verification code.
func (s *Sender) SendWelcome(ctx context.Context, to, name, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to CarHire")
	m.SetBody("text/html", fmt.Sprintf(welcomeBody, name, code))
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending welcome mail to %q: %w", to, err)
	}
	return nil
}

// Discard is a Sender stand-in which logs and drops every mail. It is
// used when the mail settings are disabled, so development setups do
// not need an SMTP account.
type Discard struct{}

// SendWelcome logs the dropped mail and reports success.
func (Discard) SendWelcome(ctx context.Context, to, name, code string) error {
	log.Info(
		ctx, "mail is disabled, dropping welcome mail",
		slog.String("to", to),
	)
	return nil
}
