// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Payment models a payment settling one booking. The query shape of
// the composed views treats it as at most one payment per booking;
// the schema itself does not enforce that.
type Payment struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	PaymentDate   time.Time `json:"paymentDate"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
}

// PaymentPatch lists the updatable payment columns.
type PaymentPatch struct {
	BookingID     *int64
	PaymentDate   *time.Time
	Amount        *string
	PaymentMethod *string
}
