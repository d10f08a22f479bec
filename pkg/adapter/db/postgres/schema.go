// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// schemaDDL creates all entity tables. Statements are idempotent so
// the init command may run against a half-initialized database.
// Every foreign key is enforced by the DBMS; the application layer
// relies on constraint violations surfacing as persistence errors.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS locations (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    contact_number TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS customers (
    id BIGSERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    phone_number TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    verification_code TEXT,
    is_verified BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE TABLE IF NOT EXISTS cars (
    id BIGSERIAL PRIMARY KEY,
    model TEXT NOT NULL,
    year INTEGER NOT NULL,
    color TEXT NOT NULL DEFAULT '',
    rental_rate NUMERIC(10, 2) NOT NULL,
    availability BOOLEAN NOT NULL DEFAULT TRUE,
    location_id BIGINT NOT NULL REFERENCES locations (id)
);
CREATE TABLE IF NOT EXISTS bookings (
    id BIGSERIAL PRIMARY KEY,
    car_id BIGINT NOT NULL REFERENCES cars (id),
    customer_id BIGINT NOT NULL REFERENCES customers (id),
    rental_start_date DATE NOT NULL,
    rental_end_date DATE NOT NULL,
    total_amount NUMERIC(10, 2) NOT NULL
);
CREATE TABLE IF NOT EXISTS reservations (
    id BIGSERIAL PRIMARY KEY,
    customer_id BIGINT NOT NULL REFERENCES customers (id),
    car_id BIGINT NOT NULL REFERENCES cars (id),
    reservation_date DATE NOT NULL,
    pickup_date DATE NOT NULL,
    return_date DATE NOT NULL
);
CREATE TABLE IF NOT EXISTS payments (
    id BIGSERIAL PRIMARY KEY,
    booking_id BIGINT NOT NULL REFERENCES bookings (id),
    payment_date DATE NOT NULL,
    amount NUMERIC(10, 2) NOT NULL,
    payment_method TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS insurances (
    id BIGSERIAL PRIMARY KEY,
    car_id BIGINT NOT NULL REFERENCES cars (id),
    provider TEXT NOT NULL,
    policy_number TEXT NOT NULL,
    start_date DATE NOT NULL,
    end_date DATE NOT NULL
);
CREATE TABLE IF NOT EXISTS maintenances (
    id BIGSERIAL PRIMARY KEY,
    car_id BIGINT NOT NULL REFERENCES cars (id),
    date DATE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    cost NUMERIC(10, 2) NOT NULL
);
`

// InitSchema creates all tables of the car rental schema within a
// single transaction on the given connection.
func InitSchema(ctx context.Context, c repo.Conn) error {
	return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
		if _, err := tx.Exec(ctx, schemaDDL); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
		return nil
	})
}
