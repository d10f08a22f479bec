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

// Insurances is the insurance policies repository.
type Insurances struct{}

// NewInsurances instantiates the insurance policies repository.
func NewInsurances() Insurances {
	return Insurances{}
}

func (Insurances) Conn(c repo.Conn) repo.CRUDQueryer[model.Insurance, model.InsurancePatch] {
	return insurancesQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Insurances) Tx(tx repo.Tx) repo.CRUDQueryer[model.Insurance, model.InsurancePatch] {
	return insurancesQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gInsurance struct {
	ID           int64 `gorm:"primaryKey"`
	CarID        int64
	Provider     string
	PolicyNumber string
	StartDate    time.Time
	EndDate      time.Time
}

func (gInsurance) TableName() string {
	return "insurances"
}

func (gi gInsurance) Model() *model.Insurance {
	return &model.Insurance{
		ID:           gi.ID,
		CarID:        gi.CarID,
		Provider:     gi.Provider,
		PolicyNumber: gi.PolicyNumber,
		StartDate:    gi.StartDate,
		EndDate:      gi.EndDate,
	}
}

func newGInsurance(m *model.Insurance) *gInsurance {
	return &gInsurance{
		CarID:        m.CarID,
		Provider:     m.Provider,
		PolicyNumber: m.PolicyNumber,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
	}
}

func insuranceColumns(p model.InsurancePatch) map[string]any {
	cols := map[string]any{}
	if p.CarID != nil {
		cols["car_id"] = *p.CarID
	}
	if p.Provider != nil {
		cols["provider"] = *p.Provider
	}
	if p.PolicyNumber != nil {
		cols["policy_number"] = *p.PolicyNumber
	}
	if p.StartDate != nil {
		cols["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		cols["end_date"] = *p.EndDate
	}
	return cols
}

type insurancesQueryer[Q postgres.Queryer] struct {
	q Q
}

func (iq insurancesQueryer[Q]) All(ctx context.Context) ([]model.Insurance, error) {
	return postgres.All[gInsurance, model.Insurance](ctx, iq.q)
}

func (iq insurancesQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Insurance, error) {
	return postgres.ByID[gInsurance, model.Insurance](ctx, iq.q, id)
}

func (iq insurancesQueryer[Q]) Create(ctx context.Context, m *model.Insurance) (*model.Insurance, error) {
	return postgres.Create[gInsurance, model.Insurance](ctx, iq.q, newGInsurance(m))
}

func (iq insurancesQueryer[Q]) Update(ctx context.Context, id int64, p model.InsurancePatch) (*model.Insurance, error) {
	return postgres.Update[gInsurance, model.Insurance](ctx, iq.q, id, insuranceColumns(p))
}

func (iq insurancesQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gInsurance](ctx, iq.q, id)
}
