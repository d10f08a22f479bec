// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package viewsuc contains the relational view composer use case.
// Each operation is a pure read over one join statement; results are
// computed at request time and never materialized.
package viewsuc

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// UseCase composes cross-entity views out of the views repository.
type UseCase struct {
	pool  repo.Pool
	views repo.Views
}

// New instantiates the views use case.
func New(p repo.Pool, v repo.Views) *UseCase {
	return &UseCase{pool: p, views: v}
}

// BookingDetails returns the booking joined with its customer, car,
// and location. All joins are inner: a missing row on any side makes
// the whole view nil.
func (uc *UseCase) BookingDetails(ctx context.Context, bookingID int64) (d *model.BookingDetails, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		d, err = uc.views.Conn(c).BookingDetails(ctx, bookingID)
		return err
	})
	if err != nil {
		d = nil
	}
	return
}

// BookingWithPayment returns the booking joined with its customer,
// car, and payment. A booking that has no payment row yields nil even
// though the booking itself exists.
func (uc *UseCase) BookingWithPayment(ctx context.Context, bookingID int64) (d *model.BookingWithPayment, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		d, err = uc.views.Conn(c).BookingWithPayment(ctx, bookingID)
		return err
	})
	if err != nil {
		d = nil
	}
	return
}

// CustomerDetails returns one row per booking of the customer with
// the booked car attached, or a single row with nil booking and car
// for a customer without bookings. A nil slice means the customer
// itself does not exist.
func (uc *UseCase) CustomerDetails(ctx context.Context, customerID int64) (rows []model.CustomerBookingRow, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rows, err = uc.views.Conn(c).CustomerDetails(ctx, customerID)
		return err
	})
	if err != nil {
		rows = nil
	}
	return
}

// LocationWithCars returns the location aggregated with all its cars.
// A location without cars carries an empty (non-nil) cars slice; a
// missing location yields nil.
func (uc *UseCase) LocationWithCars(ctx context.Context, locationID int64) (lc *model.LocationWithCars, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		lc, err = uc.views.Conn(c).LocationWithCars(ctx, locationID)
		return err
	})
	if err != nil {
		lc = nil
	}
	return
}
