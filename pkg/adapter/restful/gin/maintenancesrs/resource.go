// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package maintenancesrs realizes the maintenance records resource.
package maintenancesrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the maintenances instantiation of the generic CRUD use
// case.
type UseCase = cruduc.UseCase[
	model.Maintenance, model.MaintenancePatch,
	repo.CRUDQueryer[model.Maintenance, model.MaintenancePatch],
]

type resource struct {
	crudrs.Resource[
		model.Maintenance, model.MaintenancePatch,
		repo.CRUDQueryer[model.Maintenance, model.MaintenancePatch],
	]
}

// Register instantiates a resource adapting the maintenances use case
// with the relevant REST APIs including:
//  1. GET and POST requests to maintenance
//  2. GET, PUT, and DELETE requests to maintenance/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, maintenances *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("maintenance record", maintenances)}
	r.GET("maintenance", rs.List)
	r.GET("maintenance/:id", rs.Get)
	r.POST("maintenance", rs.CreateMaintenance)
	r.PUT("maintenance/:id", rs.UpdateMaintenance)
	r.DELETE("maintenance/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
