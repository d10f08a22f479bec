// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// TxHandler runs within a transaction started on a connection.
type TxHandler func(context.Context, Tx) error

// Conn is a single database connection. Queries run on it outside of
// any explicit transaction; a transaction may be started with Tx.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error
	IsConn()
}
