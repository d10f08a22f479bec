// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the generic
// CRUD use case.
package carsrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the cars instantiation of the generic CRUD use case.
type UseCase = cruduc.UseCase[
	model.Car, model.CarPatch,
	repo.CRUDQueryer[model.Car, model.CarPatch],
]

type resource struct {
	crudrs.Resource[
		model.Car, model.CarPatch,
		repo.CRUDQueryer[model.Car, model.CarPatch],
	]
}

// Register instantiates a resource adapting the cars use case with
// the relevant REST APIs including:
//  1. GET and POST requests to cars
//  2. GET, PUT, and DELETE requests to cars/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, cars *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("car", cars)}
	r.GET("cars", rs.List)
	r.GET("cars/:id", rs.Get)
	r.POST("cars", rs.CreateCar)
	r.PUT("cars/:id", rs.UpdateCar)
	r.DELETE("cars/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
