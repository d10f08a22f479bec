// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authuc_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-m-josh/carhire/pkg/core/cerr"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/token"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/authuc"
)

type fakeConn struct{}

func (fakeConn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not implemented")
}

func (fakeConn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errors.New("not implemented")
}

func (fakeConn) Tx(context.Context, repo.TxHandler) error {
	return errors.New("not implemented")
}

func (fakeConn) IsConn() {}

type fakePool struct{}

func (fakePool) Conn(ctx context.Context, h repo.ConnHandler) error {
	return h(ctx, fakeConn{})
}

// fakeCustomers keeps customers in memory, keyed by their unique
// email, and acts as its own queryer for both bindings.
type fakeCustomers struct {
	byEmail map[string]*model.Customer
	nextID  int64
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{byEmail: map[string]*model.Customer{}, nextID: 1}
}

func (f *fakeCustomers) Conn(repo.Conn) repo.CustomersQueryer { return f }
func (f *fakeCustomers) Tx(repo.Tx) repo.CustomersQueryer     { return f }

func (f *fakeCustomers) All(context.Context) ([]model.Customer, error) {
	ms := make([]model.Customer, 0, len(f.byEmail))
	for _, c := range f.byEmail {
		ms = append(ms, *c)
	}
	return ms, nil
}

func (f *fakeCustomers) ByID(_ context.Context, id int64) (*model.Customer, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomers) Create(_ context.Context, m *model.Customer) (*model.Customer, error) {
	cp := *m
	cp.ID = f.nextID
	f.nextID++
	f.byEmail[cp.Email] = &cp
	out := cp
	return &out, nil
}

func (f *fakeCustomers) Update(context.Context, int64, model.CustomerPatch) (*model.Customer, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCustomers) Delete(context.Context, int64) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeCustomers) ByEmail(_ context.Context, email string) (*model.Customer, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomers) MarkVerified(_ context.Context, id int64) (*model.Customer, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			c.IsVerified = true
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) (bool, error) {
	return hashed == "hashed:"+password, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(c token.Claims) (string, error) {
	return "tok-" + strconv.FormatInt(c.UserID, 10) + "-" + c.Email, nil
}

func (fakeIssuer) Verify(string) (*token.Claims, error) {
	return nil, token.ErrInvalidToken
}

type sentMail struct {
	to, name, code string
}

type fakeMailer struct {
	sent chan sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 8)}
}

func (m *fakeMailer) SendWelcome(_ context.Context, to, name, code string) error {
	m.sent <- sentMail{to: to, name: name, code: code}
	return nil
}

func (m *fakeMailer) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case s := <-m.sent:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("no welcome mail was dispatched")
		return sentMail{}
	}
}

func newUseCase(customers *fakeCustomers, mailer *fakeMailer) *authuc.UseCase {
	return authuc.New(fakePool{}, customers, fakeHasher{}, fakeIssuer{}, mailer)
}

var registration = model.Registration{
	FirstName:   "Jane",
	LastName:    "Mwangi",
	Email:       "jane@example.com",
	Password:    "s3cret-pass",
	PhoneNumber: "+254700000000",
	Address:     "Nairobi",
}

var codePattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

func TestRegister(t *testing.T) {
	customers := newFakeCustomers()
	mailer := newFakeMailer()
	uc := newUseCase(customers, mailer)

	s, err := uc.Register(context.Background(), registration)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.User.ID)
	assert.Equal(t, "jane@example.com", s.User.Email)
	assert.False(t, s.User.IsVerified)
	assert.Equal(t, "hashed:s3cret-pass", s.User.PasswordHash)
	assert.Equal(t, "tok-1-jane@example.com", s.Token)

	mail := mailer.wait(t)
	assert.Equal(t, "jane@example.com", mail.to)
	assert.Equal(t, "Jane", mail.name)
	assert.Regexp(t, codePattern, mail.code)

	stored, err := customers.ByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationCode)
	assert.Equal(t, mail.code, *stored.VerificationCode)
}

func TestLogin(t *testing.T) {
	customers := newFakeCustomers()
	mailer := newFakeMailer()
	uc := newUseCase(customers, mailer)
	_, err := uc.Register(context.Background(), registration)
	require.NoError(t, err)

	s, err := uc.Login(context.Background(), "jane@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", s.User.Email)
	assert.NotEmpty(t, s.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	customers := newFakeCustomers()
	mailer := newFakeMailer()
	uc := newUseCase(customers, mailer)
	_, err := uc.Register(context.Background(), registration)
	require.NoError(t, err)

	_, unknownErr := uc.Login(
		context.Background(), "nobody@example.com", "s3cret-pass",
	)
	_, wrongErr := uc.Login(
		context.Background(), "jane@example.com", "wrong-pass",
	)
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, authuc.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, authuc.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	var ce *cerr.Error
	require.ErrorAs(t, unknownErr, &ce)
	assert.Equal(t, http.StatusUnauthorized, ce.HTTPStatusCode)
}

func TestVerifyStateMachine(t *testing.T) {
	customers := newFakeCustomers()
	mailer := newFakeMailer()
	uc := newUseCase(customers, mailer)
	ctx := context.Background()
	_, err := uc.Register(ctx, registration)
	require.NoError(t, err)
	code := mailer.wait(t).code

	_, err = uc.Verify(ctx, "nobody@example.com", code)
	assert.ErrorIs(t, err, authuc.ErrUserNotFound)

	_, err = uc.Verify(ctx, "jane@example.com", "000000")
	assert.ErrorIs(t, err, authuc.ErrInvalidCode)

	verified, err := uc.Verify(ctx, "jane@example.com", code)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	// the transition is one-way: the correct code no longer helps
	_, err = uc.Verify(ctx, "jane@example.com", code)
	assert.ErrorIs(t, err, authuc.ErrAlreadyVerified)
}

func TestVerifyCodeIsCaseSensitive(t *testing.T) {
	customers := newFakeCustomers()
	mailer := newFakeMailer()
	uc := newUseCase(customers, mailer)
	ctx := context.Background()
	_, err := uc.Register(ctx, registration)
	require.NoError(t, err)
	code := mailer.wait(t).code

	if lower := strings.ToLower(code); lower != code {
		_, err = uc.Verify(ctx, "jane@example.com", lower)
		assert.ErrorIs(t, err, authuc.ErrInvalidCode)
	}
	_, err = uc.Verify(ctx, "jane@example.com", code)
	assert.NoError(t, err)
}

func TestNewVerificationCodeFormat(t *testing.T) {
	for i := 0; i < 64; i++ {
		code, err := authuc.NewVerificationCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
	}
}
