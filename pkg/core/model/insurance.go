// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Insurance models an insurance policy covering one car for a period.
type Insurance struct {
	ID           int64     `json:"id"`
	CarID        int64     `json:"carId"`
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policyNumber"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// InsurancePatch lists the updatable insurance columns.
type InsurancePatch struct {
	CarID        *int64
	Provider     *string
	PolicyNumber *string
	StartDate    *time.Time
	EndDate      *time.Time
}
