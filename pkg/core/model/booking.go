// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Booking models a confirmed rental of one car by one customer.
// TotalAmount is a decimal string, see Car.RentalRate.
type Booking struct {
	ID              int64     `json:"id"`
	CarID           int64     `json:"carId"`
	CustomerID      int64     `json:"customerId"`
	RentalStartDate time.Time `json:"rentalStartDate"`
	RentalEndDate   time.Time `json:"rentalEndDate"`
	TotalAmount     string    `json:"totalAmount"`
}

// BookingPatch lists the updatable booking columns.
type BookingPatch struct {
	CarID           *int64
	CustomerID      *int64
	RentalStartDate *time.Time
	RentalEndDate   *time.Time
	TotalAmount     *string
}

// BookingDetails is the booking joined with its customer, car, and
// the location of that car. All joins are inner, so the view exists
// only if all four rows exist.
type BookingDetails struct {
	Booking  Booking  `json:"booking"`
	Customer Customer `json:"customer"`
	Car      Car      `json:"car"`
	Location Location `json:"location"`
}

// BookingWithPayment is the booking joined with its customer, car,
// and payment. The payment join is inner as well: a booking which has
// not been paid yet yields no view at all.
type BookingWithPayment struct {
	Booking  Booking  `json:"booking"`
	Customer Customer `json:"customer"`
	Car      Car      `json:"car"`
	Payment  Payment  `json:"payment"`
}

// CustomerBookingRow is one row of the customer-details view: the
// customer left-joined with one of its bookings and the booked car.
// Booking and Car are nil for a customer without bookings (a single
// such row is produced) and Car alone may be nil if the referenced
// car row is gone.
type CustomerBookingRow struct {
	Customer Customer `json:"customer"`
	Booking  *Booking `json:"booking"`
	Car      *Car     `json:"car"`
}
