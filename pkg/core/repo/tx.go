// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents a database transaction. It is unsafe to be used
// concurrently. All statements executed on it observe the ACID
// properties with the isolation level of the underlying DBMS session
// (READ COMMITTED for a default PostgreSQL server).
// No use case of this project spans multiple entities in one
// transaction; Tx exists for the schema initialization command and
// for any repository which wants an all-or-nothing multi-statement
// write.
type Tx interface {
	Queryer

	// IsTx method prevents a non-Tx object (such as a Conn) to
	// mistakenly implement the Tx interface.
	IsTx()
}
