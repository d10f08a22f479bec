// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cruduc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

type fakeConn struct{}

func (fakeConn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not implemented")
}

func (fakeConn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errors.New("not implemented")
}

func (fakeConn) Tx(context.Context, repo.TxHandler) error {
	return errors.New("not implemented")
}

func (fakeConn) IsConn() {}

// fakePool hands out fakeConn instances, optionally failing instead
// so error propagation can be observed.
type fakePool struct {
	err error
}

func (p fakePool) Conn(ctx context.Context, h repo.ConnHandler) error {
	if p.err != nil {
		return p.err
	}
	return h(ctx, fakeConn{})
}

// fakeCars is an in-memory cars repository acting as its own queryer
// for both bindings.
type fakeCars struct {
	rows   map[int64]model.Car
	nextID int64
}

func newFakeCars() *fakeCars {
	return &fakeCars{rows: map[int64]model.Car{}, nextID: 1}
}

type carsQueryer = repo.CRUDQueryer[model.Car, model.CarPatch]

func (f *fakeCars) Conn(repo.Conn) carsQueryer { return f }
func (f *fakeCars) Tx(repo.Tx) carsQueryer     { return f }

func (f *fakeCars) All(context.Context) ([]model.Car, error) {
	ms := make([]model.Car, 0, len(f.rows))
	for _, m := range f.rows {
		ms = append(ms, m)
	}
	return ms, nil
}

func (f *fakeCars) ByID(_ context.Context, id int64) (*model.Car, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeCars) Create(_ context.Context, m *model.Car) (*model.Car, error) {
	cp := *m
	cp.ID = f.nextID
	f.nextID++
	f.rows[cp.ID] = cp
	return &cp, nil
}

func (f *fakeCars) Update(_ context.Context, id int64, p model.CarPatch) (*model.Car, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	if p.Model != nil {
		m.Model = *p.Model
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Color != nil {
		m.Color = *p.Color
	}
	if p.RentalRate != nil {
		m.RentalRate = *p.RentalRate
	}
	if p.Availability != nil {
		m.Availability = *p.Availability
	}
	if p.LocationID != nil {
		m.LocationID = *p.LocationID
	}
	f.rows[id] = m
	return &m, nil
}

func (f *fakeCars) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func newUseCase(p repo.Pool, cars *fakeCars) *cruduc.UseCase[
	model.Car, model.CarPatch, carsQueryer,
] {
	return cruduc.New[model.Car, model.CarPatch, carsQueryer](p, cars)
}

var sampleCar = model.Car{
	Model:        "Corolla",
	Year:         2021,
	Color:        "silver",
	RentalRate:   "54.99",
	Availability: true,
	LocationID:   1,
}

func TestCreateAssignsID(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())
	ctx := context.Background()

	created, err := uc.Create(ctx, &sampleCar)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Corolla", created.Model)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestGetAbsentIsNilNotError(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())

	got, err := uc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListEmpty(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())

	ms, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ms)
	assert.Empty(t, ms)
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())
	ctx := context.Background()
	created, err := uc.Create(ctx, &sampleCar)
	require.NoError(t, err)

	color := "black"
	updated, err := uc.Update(ctx, created.ID, model.CarPatch{Color: &color})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "black", updated.Color)
	assert.Equal(t, created.Model, updated.Model)
	assert.Equal(t, created.RentalRate, updated.RentalRate)
}

func TestUpdateAbsentIsNilNotError(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())

	color := "black"
	updated, err := uc.Update(
		context.Background(), 42, model.CarPatch{Color: &color},
	)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteReportsTrueExactlyOnce(t *testing.T) {
	uc := newUseCase(fakePool{}, newFakeCars())
	ctx := context.Background()
	created, err := uc.Create(ctx, &sampleCar)
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPoolErrorsPropagate(t *testing.T) {
	poolErr := errors.New("pool exhausted")
	uc := newUseCase(fakePool{err: poolErr}, newFakeCars())
	ctx := context.Background()

	ms, err := uc.List(ctx)
	assert.ErrorIs(t, err, poolErr)
	assert.Nil(t, ms)

	m, err := uc.Get(ctx, 1)
	assert.ErrorIs(t, err, poolErr)
	assert.Nil(t, m)

	deleted, err := uc.Delete(ctx, 1)
	assert.ErrorIs(t, err, poolErr)
	assert.False(t, deleted)
}
