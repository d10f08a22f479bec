// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package serdser

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &d))
	assert.Equal(
		t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d.Time,
	)

	require.NoError(
		t, json.Unmarshal([]byte(`"2024-05-01T10:30:00Z"`), &d),
	)
	assert.Equal(
		t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), d.Time,
	)

	assert.Error(t, json.Unmarshal([]byte(`"01/05/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}

func TestDatePtr(t *testing.T) {
	var d *Date
	assert.Nil(t, d.Ptr())

	d = &Date{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	require.NotNil(t, d.Ptr())
	assert.Equal(t, d.Time, *d.Ptr())
}

func TestAddErr(t *testing.T) {
	var errs map[string][]string
	AddErr(&errs, "year", "must be at least 1900")
	AddErr(&errs, "year", "must be an integer")
	AddErr(&errs, "color", "is required")
	assert.Equal(t, map[string][]string{
		"year":  {"must be at least 1900", "must be an integer"},
		"color": {"is required"},
	}, errs)
}
