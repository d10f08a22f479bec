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

// Payments is the payments repository.
type Payments struct{}

// NewPayments instantiates the payments repository.
func NewPayments() Payments {
	return Payments{}
}

func (Payments) Conn(c repo.Conn) repo.CRUDQueryer[model.Payment, model.PaymentPatch] {
	return paymentsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Payments) Tx(tx repo.Tx) repo.CRUDQueryer[model.Payment, model.PaymentPatch] {
	return paymentsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gPayment struct {
	ID            int64 `gorm:"primaryKey"`
	BookingID     int64
	PaymentDate   time.Time
	Amount        string `gorm:"type:numeric(10,2)"`
	PaymentMethod string
}

func (gPayment) TableName() string {
	return "payments"
}

func (gp gPayment) Model() *model.Payment {
	return &model.Payment{
		ID:            gp.ID,
		BookingID:     gp.BookingID,
		PaymentDate:   gp.PaymentDate,
		Amount:        gp.Amount,
		PaymentMethod: gp.PaymentMethod,
	}
}

func newGPayment(m *model.Payment) *gPayment {
	return &gPayment{
		BookingID:     m.BookingID,
		PaymentDate:   m.PaymentDate,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
	}
}

func paymentColumns(p model.PaymentPatch) map[string]any {
	cols := map[string]any{}
	if p.BookingID != nil {
		cols["booking_id"] = *p.BookingID
	}
	if p.PaymentDate != nil {
		cols["payment_date"] = *p.PaymentDate
	}
	if p.Amount != nil {
		cols["amount"] = *p.Amount
	}
	if p.PaymentMethod != nil {
		cols["payment_method"] = *p.PaymentMethod
	}
	return cols
}

type paymentsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (pq paymentsQueryer[Q]) All(ctx context.Context) ([]model.Payment, error) {
	return postgres.All[gPayment, model.Payment](ctx, pq.q)
}

func (pq paymentsQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Payment, error) {
	return postgres.ByID[gPayment, model.Payment](ctx, pq.q, id)
}

func (pq paymentsQueryer[Q]) Create(ctx context.Context, m *model.Payment) (*model.Payment, error) {
	return postgres.Create[gPayment, model.Payment](ctx, pq.q, newGPayment(m))
}

func (pq paymentsQueryer[Q]) Update(ctx context.Context, id int64, p model.PaymentPatch) (*model.Payment, error) {
	return postgres.Update[gPayment, model.Payment](ctx, pq.q, id, paymentColumns(p))
}

func (pq paymentsQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gPayment](ctx, pq.q, id)
}
