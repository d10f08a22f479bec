// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bcrypthash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := New()
	hashed, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
	assert.NotContains(t, hashed, "s3cret-pass")

	ok, err := h.Compare(hashed, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hashed, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h := New()
	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCompareMalformedHash(t *testing.T) {
	h := New()
	ok, err := h.Compare("not-a-bcrypt-hash", "whatever")
	assert.False(t, ok)
	assert.Error(t, err)
}
