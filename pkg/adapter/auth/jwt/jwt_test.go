// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-m-josh/carhire/pkg/core/token"
)

func TestNewRejectsEmptySecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	i, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	in := token.Claims{UserID: 42, Email: "jane@example.com", IsAdmin: true}
	tok, err := i.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := i.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	i1, err := New("secret-one", time.Hour)
	require.NoError(t, err)
	i2, err := New("secret-two", time.Hour)
	require.NoError(t, err)

	tok, err := i1.Issue(token.Claims{UserID: 7, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = i2.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	i, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := i.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	i, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	issuedAt := time.Now()
	i.now = func() time.Time { return issuedAt }
	tok, err := i.Issue(token.Claims{UserID: 9, Email: "x@y.z"})
	require.NoError(t, err)

	i.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }
	_, err = i.Verify(tok)
	assert.NoError(t, err)

	i.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = i.Verify(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
