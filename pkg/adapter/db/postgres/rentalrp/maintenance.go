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

// Maintenances is the maintenance records repository.
type Maintenances struct{}

// NewMaintenances instantiates the maintenance records repository.
func NewMaintenances() Maintenances {
	return Maintenances{}
}

func (Maintenances) Conn(c repo.Conn) repo.CRUDQueryer[model.Maintenance, model.MaintenancePatch] {
	return maintenancesQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Maintenances) Tx(tx repo.Tx) repo.CRUDQueryer[model.Maintenance, model.MaintenancePatch] {
	return maintenancesQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gMaintenance struct {
	ID          int64 `gorm:"primaryKey"`
	CarID       int64
	Date        time.Time
	Description string
	Cost        string `gorm:"type:numeric(10,2)"`
}

func (gMaintenance) TableName() string {
	return "maintenances"
}

func (gm gMaintenance) Model() *model.Maintenance {
	return &model.Maintenance{
		ID:          gm.ID,
		CarID:       gm.CarID,
		Date:        gm.Date,
		Description: gm.Description,
		Cost:        gm.Cost,
	}
}

func newGMaintenance(m *model.Maintenance) *gMaintenance {
	return &gMaintenance{
		CarID:       m.CarID,
		Date:        m.Date,
		Description: m.Description,
		Cost:        m.Cost,
	}
}

func maintenanceColumns(p model.MaintenancePatch) map[string]any {
	cols := map[string]any{}
	if p.CarID != nil {
		cols["car_id"] = *p.CarID
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Cost != nil {
		cols["cost"] = *p.Cost
	}
	return cols
}

type maintenancesQueryer[Q postgres.Queryer] struct {
	q Q
}

func (mq maintenancesQueryer[Q]) All(ctx context.Context) ([]model.Maintenance, error) {
	return postgres.All[gMaintenance, model.Maintenance](ctx, mq.q)
}

func (mq maintenancesQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Maintenance, error) {
	return postgres.ByID[gMaintenance, model.Maintenance](ctx, mq.q, id)
}

func (mq maintenancesQueryer[Q]) Create(ctx context.Context, m *model.Maintenance) (*model.Maintenance, error) {
	return postgres.Create[gMaintenance, model.Maintenance](ctx, mq.q, newGMaintenance(m))
}

func (mq maintenancesQueryer[Q]) Update(ctx context.Context, id int64, p model.MaintenancePatch) (*model.Maintenance, error) {
	return postgres.Update[gMaintenance, model.Maintenance](ctx, mq.q, id, maintenanceColumns(p))
}

func (mq maintenancesQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gMaintenance](ctx, mq.q, id)
}
