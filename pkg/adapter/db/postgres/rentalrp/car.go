// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalrp realizes the repositories of the car rental schema
// on PostgreSQL. One file per entity defines the GORM row struct (the
// core models carry no storage tags), its conversion to and from the
// entity model, the explicit patch-to-column mapping, and the CRUD
// queryer delegating to the generic query functions of the postgres
// package. The composed cross-entity views live in views.go; they are
// the reason all row structs share a single package.
package rentalrp

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// Cars is the cars repository.
type Cars struct{}

// NewCars instantiates the cars repository.
func NewCars() Cars {
	return Cars{}
}

// Conn binds the car queries to a borrowed connection.
func (Cars) Conn(c repo.Conn) repo.CRUDQueryer[model.Car, model.CarPatch] {
	return carsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

// Tx binds the car queries to an ongoing transaction.
func (Cars) Tx(tx repo.Tx) repo.CRUDQueryer[model.Car, model.CarPatch] {
	return carsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

// gCar is the storage row of a model.Car. The entity field named
// Model collides with the Record interface method, hence CarModel
// with an explicit column tag.
type gCar struct {
	ID           int64  `gorm:"primaryKey"`
	CarModel     string `gorm:"column:model"`
	Year         int
	Color        string
	RentalRate   string `gorm:"type:numeric(10,2)"`
	Availability bool
	LocationID   int64
}

func (gCar) TableName() string {
	return "cars"
}

func (gc gCar) Model() *model.Car {
	return &model.Car{
		ID:           gc.ID,
		Model:        gc.CarModel,
		Year:         gc.Year,
		Color:        gc.Color,
		RentalRate:   gc.RentalRate,
		Availability: gc.Availability,
		LocationID:   gc.LocationID,
	}
}

// newGCar maps a to-be-created car onto its row, leaving the id for
// the database to generate.
func newGCar(m *model.Car) *gCar {
	return &gCar{
		CarModel:     m.Model,
		Year:         m.Year,
		Color:        m.Color,
		RentalRate:   m.RentalRate,
		Availability: m.Availability,
		LocationID:   m.LocationID,
	}
}

// carColumns converts the patch into explicit column assignments,
// taking only the non-nil fields.
func carColumns(p model.CarPatch) map[string]any {
	cols := map[string]any{}
	if p.Model != nil {
		cols["model"] = *p.Model
	}
	if p.Year != nil {
		cols["year"] = *p.Year
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	if p.RentalRate != nil {
		cols["rental_rate"] = *p.RentalRate
	}
	if p.Availability != nil {
		cols["availability"] = *p.Availability
	}
	if p.LocationID != nil {
		cols["location_id"] = *p.LocationID
	}
	return cols
}

type carsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (cq carsQueryer[Q]) All(ctx context.Context) ([]model.Car, error) {
	return postgres.All[gCar, model.Car](ctx, cq.q)
}

func (cq carsQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Car, error) {
	return postgres.ByID[gCar, model.Car](ctx, cq.q, id)
}

func (cq carsQueryer[Q]) Create(ctx context.Context, m *model.Car) (*model.Car, error) {
	return postgres.Create[gCar, model.Car](ctx, cq.q, newGCar(m))
}

func (cq carsQueryer[Q]) Update(ctx context.Context, id int64, p model.CarPatch) (*model.Car, error) {
	return postgres.Update[gCar, model.Car](ctx, cq.q, id, carColumns(p))
}

func (cq carsQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gCar](ctx, cq.q, id)
}
