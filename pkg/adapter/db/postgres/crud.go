// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"
)

// Record is a row struct of type G which knows how to convert itself
// into the entity model M. Row structs carry the GORM column tags so
// the core models stay free of storage concerns.
type Record[M any] interface {
	Model() *M
}

// All lists every row of G's table in storage order. No rows is an
// empty slice; only storage failures produce an error.
func All[G Record[M], M any, Q Queryer](ctx context.Context, q Q) ([]M, error) {
	gdb := q.GORM(ctx)
	var gs []G
	if err := gdb.Find(&gs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ms := make([]M, 0, len(gs))
	for i := range gs {
		ms = append(ms, *gs[i].Model())
	}
	return ms, nil
}

// ByID returns the row with the given primary key, or nil if there is
// none. Absence is not an error.
func ByID[G Record[M], M any, Q Queryer](ctx context.Context, q Q, id int64) (*M, error) {
	gdb := q.GORM(ctx)
	var gs []G
	if err := gdb.Where("id = ?", id).Limit(1).Find(&gs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gs) == 0 {
		return nil, nil
	}
	return gs[0].Model(), nil
}

// Create inserts g and echoes the persisted row back through the
// RETURNING clause of the very same statement, so the caller sees the
// generated id and every server-computed default without a second
// round trip.
func Create[G Record[M], M any, Q Queryer](ctx context.Context, q Q, g *G) (*M, error) {
	gdb := q.GORM(ctx)
	if err := gdb.Clauses(clause.Returning{}).Create(g).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return (*g).Model(), nil
}

// Update applies the given column assignments to the identified row
// and returns the updated row as echoed by the RETURNING clause, or
// nil if the id matched nothing. An empty cols map degenerates to a
// plain read, since there is nothing to write.
func Update[G Record[M], M any, Q Queryer](ctx context.Context, q Q, id int64, cols map[string]any) (*M, error) {
	if len(cols) == 0 {
		return ByID[G, M, Q](ctx, q, id)
	}
	gdb := q.GORM(ctx)
	var gs []G
	res := gdb.Model(&gs).Clauses(clause.Returning{}).Where(
		"id = ?", id,
	).Updates(cols)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gs) == 0 {
		return nil, nil
	}
	return gs[0].Model(), nil
}

// Delete removes the identified row, reporting whether a row was
// removed. A missing id is a normal false return.
func Delete[G any, Q Queryer](ctx context.Context, q Q, id int64) (bool, error) {
	gdb := q.GORM(ctx)
	var g G
	res := gdb.Where("id = ?", id).Delete(&g)
	if err := res.Error; err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected > 0, nil
}
