// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the core repo interfaces to a PostgreSQL
// DBMS using the GORM framework on top of the pgx driver. The Pool,
// Conn, and Tx types realize repo.Pool, repo.Conn, and repo.Tx, while
// the generic All, ByID, Create, Update, and Delete functions
// implement the uniform CRUD contract once for every row type which
// can map itself to its entity model.
package postgres
