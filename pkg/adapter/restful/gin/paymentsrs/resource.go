// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package paymentsrs realizes the payments resource.
package paymentsrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the payments instantiation of the generic CRUD use case.
type UseCase = cruduc.UseCase[
	model.Payment, model.PaymentPatch,
	repo.CRUDQueryer[model.Payment, model.PaymentPatch],
]

type resource struct {
	crudrs.Resource[
		model.Payment, model.PaymentPatch,
		repo.CRUDQueryer[model.Payment, model.PaymentPatch],
	]
}

// Register instantiates a resource adapting the payments use case
// with the relevant REST APIs including:
//  1. GET and POST requests to payments
//  2. GET, PUT, and DELETE requests to payments/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, payments *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("payment", payments)}
	r.GET("payments", rs.List)
	r.GET("payments/:id", rs.Get)
	r.POST("payments", rs.CreatePayment)
	r.PUT("payments/:id", rs.UpdatePayment)
	r.DELETE("payments/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
