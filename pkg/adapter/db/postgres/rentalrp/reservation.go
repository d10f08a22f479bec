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

// Reservations is the reservations repository.
type Reservations struct{}

// NewReservations instantiates the reservations repository.
func NewReservations() Reservations {
	return Reservations{}
}

func (Reservations) Conn(c repo.Conn) repo.CRUDQueryer[model.Reservation, model.ReservationPatch] {
	return reservationsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Reservations) Tx(tx repo.Tx) repo.CRUDQueryer[model.Reservation, model.ReservationPatch] {
	return reservationsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gReservation struct {
	ID              int64 `gorm:"primaryKey"`
	CustomerID      int64
	CarID           int64
	ReservationDate time.Time
	PickupDate      time.Time
	ReturnDate      time.Time
}

func (gReservation) TableName() string {
	return "reservations"
}

func (gr gReservation) Model() *model.Reservation {
	return &model.Reservation{
		ID:              gr.ID,
		CustomerID:      gr.CustomerID,
		CarID:           gr.CarID,
		ReservationDate: gr.ReservationDate,
		PickupDate:      gr.PickupDate,
		ReturnDate:      gr.ReturnDate,
	}
}

func newGReservation(m *model.Reservation) *gReservation {
	return &gReservation{
		CustomerID:      m.CustomerID,
		CarID:           m.CarID,
		ReservationDate: m.ReservationDate,
		PickupDate:      m.PickupDate,
		ReturnDate:      m.ReturnDate,
	}
}

func reservationColumns(p model.ReservationPatch) map[string]any {
	cols := map[string]any{}
	if p.CustomerID != nil {
		cols["customer_id"] = *p.CustomerID
	}
	if p.CarID != nil {
		cols["car_id"] = *p.CarID
	}
	if p.ReservationDate != nil {
		cols["reservation_date"] = *p.ReservationDate
	}
	if p.PickupDate != nil {
		cols["pickup_date"] = *p.PickupDate
	}
	if p.ReturnDate != nil {
		cols["return_date"] = *p.ReturnDate
	}
	return cols
}

type reservationsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (rq reservationsQueryer[Q]) All(ctx context.Context) ([]model.Reservation, error) {
	return postgres.All[gReservation, model.Reservation](ctx, rq.q)
}

func (rq reservationsQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Reservation, error) {
	return postgres.ByID[gReservation, model.Reservation](ctx, rq.q, id)
}

func (rq reservationsQueryer[Q]) Create(ctx context.Context, m *model.Reservation) (*model.Reservation, error) {
	return postgres.Create[gReservation, model.Reservation](ctx, rq.q, newGReservation(m))
}

func (rq reservationsQueryer[Q]) Update(ctx context.Context, id int64, p model.ReservationPatch) (*model.Reservation, error) {
	return postgres.Update[gReservation, model.Reservation](ctx, rq.q, id, reservationColumns(p))
}

func (rq reservationsQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gReservation](ctx, rq.q, id)
}
