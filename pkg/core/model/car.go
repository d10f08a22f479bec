// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., the JSON field names as
// they must appear on the wire) since adding more tags does not
// complicate definition of a struct, but can prevent unnecessary
// structs duplication.
//
// Every entity comes with a corresponding patch struct (such as
// CarPatch for Car) having one pointer field per updatable column.
// A nil field means "leave that column alone", so partial updates can
// be expressed without reflecting over the entity struct itself.
package model

// Car models a rentable car which may be persisted in a database.
// The RentalRate field is a decimal string (such as "54.99") so that
// no binary floating point rounding can sneak into monetary values;
// the same convention holds for all decimal fields of this package.
type Car struct {
	ID           int64  `json:"id"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	RentalRate   string `json:"rentalRate"`
	Availability bool   `json:"availability"`
	LocationID   int64  `json:"locationId"`
}

// CarPatch lists the updatable car columns. Nil fields are skipped.
type CarPatch struct {
	Model        *string
	Year         *int
	Color        *string
	RentalRate   *string
	Availability *bool
	LocationID   *int64
}
