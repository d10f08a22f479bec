// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package locationsrs realizes the rental locations resource.
package locationsrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the locations instantiation of the generic CRUD use
// case.
type UseCase = cruduc.UseCase[
	model.Location, model.LocationPatch,
	repo.CRUDQueryer[model.Location, model.LocationPatch],
]

type resource struct {
	crudrs.Resource[
		model.Location, model.LocationPatch,
		repo.CRUDQueryer[model.Location, model.LocationPatch],
	]
}

// Register instantiates a resource adapting the locations use case
// with the relevant REST APIs including:
//  1. GET and POST requests to locations
//  2. GET, PUT, and DELETE requests to locations/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, locations *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("location", locations)}
	r.GET("locations", rs.List)
	r.GET("locations/:id", rs.Get)
	r.POST("locations", rs.CreateLocation)
	r.PUT("locations/:id", rs.UpdateLocation)
	r.DELETE("locations/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
