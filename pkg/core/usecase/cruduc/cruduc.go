// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cruduc contains the uniform CRUD use case shared by all
// entity services. The contract is identical for every entity (list,
// get, create, partial update, delete), so it is implemented once
// over the generic repo.CRUDQueryer interface and instantiated per
// entity in the routes registration.
//
// Absent rows surface as nil models (or a false flag for Delete),
// never as errors; storage failures propagate unchanged.
package cruduc

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// UseCase implements the uniform CRUD contract for the entity model M
// with patch type P, querying storage through a queryer of type Q.
// It holds the database connection pool and the repository instance
// to be guided with borrowed connections.
type UseCase[M, P any, Q repo.CRUDQueryer[M, P]] struct {
	pool repo.Pool
	rp   repo.Binder[Q]
}

// New instantiates an entity CRUD use case.
func New[M, P any, Q repo.CRUDQueryer[M, P]](
	p repo.Pool, rp repo.Binder[Q],
) *UseCase[M, P, Q] {
	return &UseCase[M, P, Q]{pool: p, rp: rp}
}

// List returns all rows in storage order. An empty table produces an
// empty slice, not an error.
func (uc *UseCase[M, P, Q]) List(ctx context.Context) (ms []M, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ms, err = uc.rp.Conn(c).All(ctx)
		return err
	})
	if err != nil {
		ms = nil
	}
	return
}

// Get returns the identified row, or nil if there is none.
func (uc *UseCase[M, P, Q]) Get(ctx context.Context, id int64) (m *M, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = uc.rp.Conn(c).ByID(ctx, id)
		return err
	})
	if err != nil {
		m = nil
	}
	return
}

// Create inserts the given entity and returns the persisted row,
// including the generated id, exactly as echoed by the insert
// statement itself.
func (uc *UseCase[M, P, Q]) Create(ctx context.Context, in *M) (m *M, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = uc.rp.Conn(c).Create(ctx, in)
		return err
	})
	if err != nil {
		m = nil
	}
	return
}

// Update applies the non-nil fields of patch to the identified row
// and returns the result, or nil if id matched nothing. Unspecified
// fields are left untouched.
func (uc *UseCase[M, P, Q]) Update(ctx context.Context, id int64, patch P) (m *M, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = uc.rp.Conn(c).Update(ctx, id, patch)
		return err
	})
	if err != nil {
		m = nil
	}
	return
}

// Delete removes the identified row, reporting whether a row was
// removed. A second deletion of the same id reports false.
func (uc *UseCase[M, P, Q]) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	err = uc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		deleted, err = uc.rp.Conn(c).Delete(ctx, id)
		return err
	})
	if err != nil {
		deleted = false
	}
	return
}
