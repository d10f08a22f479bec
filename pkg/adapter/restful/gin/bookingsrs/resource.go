// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package bookingsrs realizes the bookings resource.
package bookingsrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the bookings instantiation of the generic CRUD use case.
type UseCase = cruduc.UseCase[
	model.Booking, model.BookingPatch,
	repo.CRUDQueryer[model.Booking, model.BookingPatch],
]

type resource struct {
	crudrs.Resource[
		model.Booking, model.BookingPatch,
		repo.CRUDQueryer[model.Booking, model.BookingPatch],
	]
}

// Register instantiates a resource adapting the bookings use case
// with the relevant REST APIs including:
//  1. GET and POST requests to bookings
//  2. GET, PUT, and DELETE requests to bookings/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, bookings *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("booking", bookings)}
	r.GET("bookings", rs.List)
	r.GET("bookings/:id", rs.Get)
	r.POST("bookings", rs.CreateBooking)
	r.PUT("bookings/:id", rs.UpdateBooking)
	r.DELETE("bookings/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
