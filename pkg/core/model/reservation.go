// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Reservation models a not-yet-confirmed hold of a car for a pickup
// and return window.
type Reservation struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customerId"`
	CarID           int64     `json:"carId"`
	ReservationDate time.Time `json:"reservationDate"`
	PickupDate      time.Time `json:"pickupDate"`
	ReturnDate      time.Time `json:"returnDate"`
}

// ReservationPatch lists the updatable reservation columns.
type ReservationPatch struct {
	CustomerID      *int64
	CarID           *int64
	ReservationDate *time.Time
	PickupDate      *time.Time
	ReturnDate      *time.Time
}
