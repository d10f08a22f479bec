// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package reservationsrs realizes the reservations resource.
package reservationsrs

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/crudrs"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// UseCase is the reservations instantiation of the generic CRUD use
// case.
type UseCase = cruduc.UseCase[
	model.Reservation, model.ReservationPatch,
	repo.CRUDQueryer[model.Reservation, model.ReservationPatch],
]

type resource struct {
	crudrs.Resource[
		model.Reservation, model.ReservationPatch,
		repo.CRUDQueryer[model.Reservation, model.ReservationPatch],
	]
}

// Register instantiates a resource adapting the reservations use case
// with the relevant REST APIs including:
//  1. GET and POST requests to reservations
//  2. GET, PUT, and DELETE requests to reservations/:id
//
// The admin middlewares gate the DELETE route.
func Register(r *gin.RouterGroup, reservations *UseCase, admin ...gin.HandlerFunc) {
	rs := &resource{crudrs.New("reservation", reservations)}
	r.GET("reservations", rs.List)
	r.GET("reservations/:id", rs.Get)
	r.POST("reservations", rs.CreateReservation)
	r.PUT("reservations/:id", rs.UpdateReservation)
	r.DELETE("reservations/:id", append(admin, gin.HandlerFunc(rs.Delete))...)
}
