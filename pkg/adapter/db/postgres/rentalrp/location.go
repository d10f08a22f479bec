// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalrp

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// Locations is the locations repository.
type Locations struct{}

// NewLocations instantiates the locations repository.
func NewLocations() Locations {
	return Locations{}
}

func (Locations) Conn(c repo.Conn) repo.CRUDQueryer[model.Location, model.LocationPatch] {
	return locationsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (Locations) Tx(tx repo.Tx) repo.CRUDQueryer[model.Location, model.LocationPatch] {
	return locationsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gLocation struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Address       string
	ContactNumber string
}

func (gLocation) TableName() string {
	return "locations"
}

func (gl gLocation) Model() *model.Location {
	return &model.Location{
		ID:            gl.ID,
		Name:          gl.Name,
		Address:       gl.Address,
		ContactNumber: gl.ContactNumber,
	}
}

func newGLocation(m *model.Location) *gLocation {
	return &gLocation{
		Name:          m.Name,
		Address:       m.Address,
		ContactNumber: m.ContactNumber,
	}
}

func locationColumns(p model.LocationPatch) map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if p.ContactNumber != nil {
		cols["contact_number"] = *p.ContactNumber
	}
	return cols
}

type locationsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (lq locationsQueryer[Q]) All(ctx context.Context) ([]model.Location, error) {
	return postgres.All[gLocation, model.Location](ctx, lq.q)
}

func (lq locationsQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Location, error) {
	return postgres.ByID[gLocation, model.Location](ctx, lq.q, id)
}

func (lq locationsQueryer[Q]) Create(ctx context.Context, m *model.Location) (*model.Location, error) {
	return postgres.Create[gLocation, model.Location](ctx, lq.q, newGLocation(m))
}

func (lq locationsQueryer[Q]) Update(ctx context.Context, id int64, p model.LocationPatch) (*model.Location, error) {
	return postgres.Update[gLocation, model.Location](ctx, lq.q, id, locationColumns(p))
}

func (lq locationsQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gLocation](ctx, lq.q, id)
}
