// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package customersrs realizes the customers resource. Unlike the
// other entity resources, creation accepts a plaintext password and
// hashes it before anything reaches the use case layer; accounts
// created this way are administrative and skip the verification flow
// of the auth resource.
package customersrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/hash"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the customers instantiation of the generic CRUD use
// case.
type UseCase = cruduc.UseCase[
	model.Customer, model.CustomerPatch, repo.CustomersQueryer,
]

type resource struct {
	crudrs.Resource[
		model.Customer, model.CustomerPatch, repo.CustomersQueryer,
	]
	hasher hash.Hasher
}

// Register instantiates a resource adapting the customers use case
// with the relevant REST APIs including:
//  1. GET and POST requests to customers
//  2. GET, PUT, and DELETE requests to customers/:id
//
// The admin middlewares gate the DELETE route.
func Register(
	r *gin.RouterGroup, customers *UseCase, hasher hash.Hasher,
	admin ...gin.HandlerFunc,
) {
	rs := &resource{
		Resource: crudrs.New("customer", customers),
		hasher:   hasher,
	}
	r.GET("customers", rs.List)
	r.GET("customers/:id", rs.Get)
	r.POST("customers", rs.CreateCustomer)
	r.PUT("customers/:id", rs.UpdateCustomer)
	r.DELETE("customers/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
