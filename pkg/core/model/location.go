// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Location models a rental branch which owns zero or more cars.
type Location struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

// LocationPatch lists the updatable location columns.
type LocationPatch struct {
	Name          *string
	Address       *string
	ContactNumber *string
}

// LocationWithCars aggregates a location with all cars stationed
// there. Cars is never nil; a location without cars owns an empty
// slice.
type LocationWithCars struct {
	Location Location `json:"location"`
	Cars     []Car    `json:"cars"`
}
