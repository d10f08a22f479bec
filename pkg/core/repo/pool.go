// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler runs with a connection borrowed from the pool. The
// connection may not be retained after the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool is a pool of database connections. Each service call borrows
// one connection for exactly one logical operation; no connection is
// shared between requests.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
