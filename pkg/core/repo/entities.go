// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/core/model"
)

// Plain CRUD repositories, one per entity.
type (
	Cars         = Binder[CRUDQueryer[model.Car, model.CarPatch]]
	Locations    = Binder[CRUDQueryer[model.Location, model.LocationPatch]]
	Bookings     = Binder[CRUDQueryer[model.Booking, model.BookingPatch]]
	Reservations = Binder[CRUDQueryer[model.Reservation, model.ReservationPatch]]
	Payments     = Binder[CRUDQueryer[model.Payment, model.PaymentPatch]]
	Insurances   = Binder[CRUDQueryer[model.Insurance, model.InsurancePatch]]
	Maintenances = Binder[CRUDQueryer[model.Maintenance, model.MaintenancePatch]]
)

// CustomersQueryer extends the uniform contract with the auth-flow
// queries. ByEmail follows the nil-for-absent convention.
type CustomersQueryer interface {
	CRUDQueryer[model.Customer, model.CustomerPatch]

	// ByEmail returns the customer owning the unique email, or nil.
	ByEmail(ctx context.Context, email string) (*model.Customer, error)

	// MarkVerified flips is_verified to true for the identified
	// customer and returns the updated row, or nil if absent.
	MarkVerified(ctx context.Context, id int64) (*model.Customer, error)
}

// Customers is the customers repository.
type Customers = Binder[CustomersQueryer]

// ViewsQueryer serves the composed read-only views. Each view is one
// join statement; none of them opens a transaction.
type ViewsQueryer interface {
	// BookingDetails inner-joins the booking with its customer, car,
	// and the car's location. Nil if any side is missing.
	BookingDetails(ctx context.Context, bookingID int64) (*model.BookingDetails, error)

	// BookingWithPayment inner-joins the booking with its customer,
	// car, and payment. A booking without a payment row yields nil.
	BookingWithPayment(ctx context.Context, bookingID int64) (*model.BookingWithPayment, error)

	// CustomerDetails left-joins the customer with its bookings and
	// their cars, one row per booking. A customer without bookings
	// gets a single row with nil booking and car. A missing customer
	// yields a nil slice.
	CustomerDetails(ctx context.Context, customerID int64) ([]model.CustomerBookingRow, error)

	// LocationWithCars left-joins the location with its cars and
	// collapses the match into one aggregate. Nil if the location is
	// missing; a location without cars carries an empty Cars slice.
	LocationWithCars(ctx context.Context, locationID int64) (*model.LocationWithCars, error)
}

// Views is the composed-views repository.
type Views = Binder[ViewsQueryer]
