// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authuc contains the authentication and verification use
// case: registration with a hashed password and a mailed verification
// code, credential checking with session token issuance, and the
// one-way verification state machine
//
//	Unregistered -> Registered(unverified) -> Verified
//
// with no transition back.
package authuc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dev-m-josh/carhire/pkg/core/cerr"
	"github.com/dev-m-josh/carhire/pkg/core/email"
	"github.com/dev-m-josh/carhire/pkg/core/hash"
	"github.com/dev-m-josh/carhire/pkg/core/log"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/token"
)

// Auth-domain failures. All of them serialize as a 401 at the REST
// boundary (wrapped by cerr.Authentication); they stay distinguishable
// by errors.Is for callers and tests.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, deliberately indistinguishable from each other.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyVerified = errors.New("user already verified")
	ErrInvalidCode     = errors.New("invalid verification code")
)

// UseCase implements registration, login, and verification over the
// customers repository and the injected hashing, token, and mail
// capabilities.
type UseCase struct {
	pool      repo.Pool
	customers repo.Customers
	hasher    hash.Hasher
	tokens    token.Issuer
	mailer    email.Sender
}

// New instantiates the auth use case. All collaborators are required;
// they are passed individually so a changed dependency surfaces as a
// compilation error at the call site.
func New(
	p repo.Pool,
	c repo.Customers,
	h hash.Hasher,
	t token.Issuer,
	m email.Sender,
) *UseCase {
	return &UseCase{pool: p, customers: c, hasher: h, tokens: t, mailer: m}
}

// Register hashes the plaintext password, assigns a fresh
// verification code, persists the customer as unverified, and returns
// the persisted customer together with a signed session token.
// The welcome mail carrying the code is dispatched on its own
// goroutine: a mail transport failure is logged and never rolls the
// registration back.
func (uc *UseCase) Register(ctx context.Context, reg model.Registration) (*model.Session, error) {
	hashed, err := uc.hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}
	code, err := NewVerificationCode()
	if err != nil {
		return nil, err
	}
	cust := &model.Customer{
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		Email:            reg.Email,
		PasswordHash:     hashed,
		PhoneNumber:      reg.PhoneNumber,
		Address:          reg.Address,
		VerificationCode: &code,
	}
	var created *model.Customer
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		created, err = uc.customers.Conn(c).Create(ctx, cust)
		return err
	})
	if err != nil {
		return nil, err
	}
	tok, err := uc.issue(created)
	if err != nil {
		return nil, err
	}
	go func() {
		// detached from the request: registration already succeeded
		ctx := context.WithoutCancel(ctx)
		if err := uc.mailer.SendWelcome(ctx, created.Email, created.FirstName, code); err != nil {
			log.Warn(ctx, "welcome mail dispatch failed",
				slog.String("email", created.Email),
				log.Err("error", err),
			)
		}
	}()
	return &model.Session{User: *created, Token: tok}, nil
}

// Login checks the credentials and returns the customer with a fresh
// session token. An unknown email and a wrong password fail with the
// very same error so that nothing about account existence leaks.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*model.Session, error) {
	var cust *model.Customer
	err := uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		var err error
		cust, err = uc.customers.Conn(c).ByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, cerr.Authentication(ErrInvalidCredentials)
	}
	match, err := uc.hasher.Compare(cust.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, cerr.Authentication(ErrInvalidCredentials)
	}
	tok, err := uc.issue(cust)
	if err != nil {
		return nil, err
	}
	return &model.Session{User: *cust, Token: tok}, nil
}

// Verify matches the code against the customer owning the email and
// flips it to verified. The comparison is exact and case sensitive.
// Once verified, any further attempt fails with ErrAlreadyVerified
// regardless of the supplied code, which makes the code single-use.
func (uc *UseCase) Verify(ctx context.Context, email, code string) (*model.Customer, error) {
	var verified *model.Customer
	err := uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := uc.customers.Conn(c)
		cust, err := q.ByEmail(ctx, email)
		if err != nil {
			return err
		}
		if cust == nil {
			return cerr.Authentication(ErrUserNotFound)
		}
		if cust.IsVerified {
			return cerr.Authentication(ErrAlreadyVerified)
		}
		if cust.VerificationCode == nil || *cust.VerificationCode != code {
			return cerr.Authentication(ErrInvalidCode)
		}
		verified, err = q.MarkVerified(ctx, cust.ID)
		if err != nil {
			return err
		}
		if verified == nil {
			// row vanished between the lookup and the update
			return cerr.Authentication(ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verified, nil
}

func (uc *UseCase) issue(c *model.Customer) (string, error) {
	return uc.tokens.Issue(token.Claims{
		UserID:  c.ID,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
	})
}
