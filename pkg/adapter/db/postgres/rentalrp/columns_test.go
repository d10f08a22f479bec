// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalrp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev-m-josh/carhire/pkg/core/model"
)

func TestCarColumns(t *testing.T) {
	assert.Empty(t, carColumns(model.CarPatch{}))

	rate := "64.50"
	available := false
	cols := carColumns(model.CarPatch{
		RentalRate:   &rate,
		Availability: &available,
	})
	assert.Equal(t, map[string]any{
		"rental_rate":  "64.50",
		"availability": false,
	}, cols)
}

func TestCustomerColumnsCannotTouchCredentials(t *testing.T) {
	name := "Jane"
	admin := true
	cols := customerColumns(model.CustomerPatch{
		FirstName: &name,
		IsAdmin:   &admin,
	})
	assert.Equal(t, map[string]any{
		"first_name": "Jane",
		"is_admin":   true,
	}, cols)
	assert.NotContains(t, cols, "password_hash")
	assert.NotContains(t, cols, "verification_code")
	assert.NotContains(t, cols, "is_verified")
}

func TestBookingColumns(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	amount := "330.00"
	cols := bookingColumns(model.BookingPatch{
		RentalStartDate: &start,
		TotalAmount:     &amount,
	})
	assert.Equal(t, map[string]any{
		"rental_start_date": start,
		"total_amount":      "330.00",
	}, cols)
}

func TestNullRowsMapAbsentJoinsToNil(t *testing.T) {
	assert.Nil(t, gBookingNull{}.Model())
	assert.Nil(t, gCarNull{}.Model())

	id := int64(7)
	carID := int64(3)
	customerID := int64(4)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)
	amount := "330.00"
	b := gBookingNull{
		ID:              &id,
		CarID:           &carID,
		CustomerID:      &customerID,
		RentalStartDate: &start,
		RentalEndDate:   &end,
		TotalAmount:     &amount,
	}.Model()
	assert.Equal(t, &model.Booking{
		ID:              7,
		CarID:           3,
		CustomerID:      4,
		RentalStartDate: start,
		RentalEndDate:   end,
		TotalAmount:     "330.00",
	}, b)
}
