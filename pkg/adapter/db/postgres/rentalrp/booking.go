// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalrp

import (
	"context"
	"time"

	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// Bookings is the bookings repository.
type Bookings struct{}

// NewBookings instantiates the bookings repository.
func NewBookings() Bookings {
	return Bookings{}
}

func (Bookings) Conn(c repo.Conn) repo.CRUDQueryer[model.Booking, model.BookingPatch] {
	return bookingsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Bookings) Tx(tx repo.Tx) repo.CRUDQueryer[model.Booking, model.BookingPatch] {
	return bookingsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gBooking struct {
	ID              int64 `gorm:"primaryKey"`
	CarID           int64
	CustomerID      int64
	RentalStartDate time.Time
	RentalEndDate   time.Time
	TotalAmount     string `gorm:"type:numeric(10,2)"`
}

func (gBooking) TableName() string {
	return "bookings"
}

func (gb gBooking) Model() *model.Booking {
	return &model.Booking{
		ID:              gb.ID,
		CarID:           gb.CarID,
		CustomerID:      gb.CustomerID,
		RentalStartDate: gb.RentalStartDate,
		RentalEndDate:   gb.RentalEndDate,
		TotalAmount:     gb.TotalAmount,
	}
}

func newGBooking(m *model.Booking) *gBooking {
	return &gBooking{
		CarID:           m.CarID,
		CustomerID:      m.CustomerID,
		RentalStartDate: m.RentalStartDate,
		RentalEndDate:   m.RentalEndDate,
		TotalAmount:     m.TotalAmount,
	}
}

func bookingColumns(p model.BookingPatch) map[string]any {
	cols := map[string]any{}
	if p.CarID != nil {
		cols["car_id"] = *p.CarID
	}
	if p.CustomerID != nil {
		cols["customer_id"] = *p.CustomerID
	}
	if p.RentalStartDate != nil {
		cols["rental_start_date"] = *p.RentalStartDate
	}
	if p.RentalEndDate != nil {
		cols["rental_end_date"] = *p.RentalEndDate
	}
	if p.TotalAmount != nil {
		cols["total_amount"] = *p.TotalAmount
	}
	return cols
}

type bookingsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (bq bookingsQueryer[Q]) All(ctx context.Context) ([]model.Booking, error) {
	return postgres.All[gBooking, model.Booking](ctx, bq.q)
}

func (bq bookingsQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	return postgres.ByID[gBooking, model.Booking](ctx, bq.q, id)
}

func (bq bookingsQueryer[Q]) Create(ctx context.Context, m *model.Booking) (*model.Booking, error) {
	return postgres.Create[gBooking, model.Booking](ctx, bq.q, newGBooking(m))
}

func (bq bookingsQueryer[Q]) Update(ctx context.Context, id int64, p model.BookingPatch) (*model.Booking, error) {
	return postgres.Update[gBooking, model.Booking](ctx, bq.q, id, bookingColumns(p))
}

func (bq bookingsQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gBooking](ctx, bq.q, id)
}
