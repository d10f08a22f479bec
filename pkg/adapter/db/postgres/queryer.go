// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer constrains the generic query functions to the two
// statement-running types of this adapter, keeping each query
// implementation usable on a plain connection and within a
// transaction alike.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}
