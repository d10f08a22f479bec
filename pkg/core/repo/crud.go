// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the repositories expected by the use cases
// as a series of interfaces. All entity repositories share one
// uniform CRUD contract, expressed once by the generic CRUDQueryer
// interface, and bind their queries to a borrowed connection or an
// ongoing transaction through the Binder interface.
//
// The single most important convention of this package: an absent row
// is NOT an error. Lookups and updates report it as a nil model and
// deletions as a false flag, while the error return stays nil. Errors
// are reserved for actual storage failures which must propagate
// unchanged.
package repo

import "context"

// CRUDQueryer is the uniform per-entity query contract. M is the
// entity model and P its patch struct with one optional field per
// updatable column.
type CRUDQueryer[M, P any] interface {
	// All returns every row in storage order. No rows is an empty
	// slice, never an error.
	All(ctx context.Context) ([]M, error)

	// ByID returns the identified row, or nil if there is none.
	ByID(ctx context.Context, id int64) (*M, error)

	// Create inserts m (its ID field is ignored) and returns the
	// persisted row including the generated id, echoed back by the
	// same statement which wrote it.
	Create(ctx context.Context, m *M) (*M, error)

	// Update applies the non-nil fields of patch and returns the
	// resulting row, or nil if id matched nothing. An empty patch
	// returns the current row unchanged.
	Update(ctx context.Context, id int64, patch P) (*M, error)

	// Delete removes the identified row, reporting whether a row was
	// actually removed. Deleting a missing id is a normal false
	// return.
	Delete(ctx context.Context, id int64) (bool, error)
}

// Binder obtains a queryer of type Q bound to a borrowed connection
// or an ongoing transaction, so the same queries can serve both.
type Binder[Q any] interface {
	Conn(Conn) Q
	Tx(Tx) Q
}
