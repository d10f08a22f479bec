// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Maintenance models one maintenance event of a car. Cost is a
// decimal string, see Car.RentalRate.
type Maintenance struct {
	ID          int64     `json:"id"`
	CarID       int64     `json:"carId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Cost        string    `json:"cost"`
}

// MaintenancePatch lists the updatable maintenance columns.
type MaintenancePatch struct {
	CarID       *int64
	Date        *time.Time
	Description *string
	Cost        *string
}
