// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package insurancesrs realizes the insurance policies resource.
package insurancesrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the insurances instantiation of the generic CRUD use
// case.
type UseCase = cruduc.UseCase[
	model.Insurance, model.InsurancePatch,
	repo.CRUDQueryer[model.Insurance, model.InsurancePatch],
]

type resource struct {
	crudrs.Resource[
		model.Insurance, model.InsurancePatch,
		repo.CRUDQueryer[model.Insurance, model.InsurancePatch],
	]
}

// Register instantiates a resource adapting the insurances use case
// with the relevant REST APIs including:
//  1. GET and POST requests to insurance
//  2. GET, PUT, and DELETE requests to insurance/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, insurances *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("insurance", insurances)}
	r.GET("insurance", rs.List)
	r.GET("insurance/:id", rs.Get)
	r.POST("insurance", rs.CreateInsurance)
	r.PUT("insurance/:id", rs.UpdateInsurance)
	r.DELETE("insurance/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
