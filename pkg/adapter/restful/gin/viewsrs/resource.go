// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package viewsrs realizes the composed read-only views resource,
// exposing the join queries which cut across multiple entities.
package viewsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/viewsuc"
)

type resource struct {
	views *viewsuc.UseCase
}

// Register instantiates a resource adapting the views use case with
// the relevant REST APIs including:
//  1. GET requests to bookings/:id/details and bookings/:id/payment
//  2. GET requests to customers/:id/details
//  3. GET requests to locations/:id/cars
func Register(r *gin.RouterGroup, views *viewsuc.UseCase) {
	rs := &resource{views: views}
	r.GET("bookings/:id/details", rs.BookingDetails)
	r.GET("bookings/:id/payment", rs.BookingWithPayment)
	r.GET("customers/:id/details", rs.CustomerDetails)
	r.GET("locations/:id/cars", rs.LocationWithCars)
}

func (rs *resource) BookingDetails(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	d, err := rs.views.BookingDetails(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if d == nil {
		notFound(c, "booking details not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (rs *resource) BookingWithPayment(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	d, err := rs.views.BookingWithPayment(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if d == nil {
		notFound(c, "paid booking not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (rs *resource) CustomerDetails(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	rows, err := rs.views.CustomerDetails(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if rows == nil {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rs *resource) LocationWithCars(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	lc, err := rs.views.LocationWithCars(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if lc == nil {
		notFound(c, "location not found")
		return
	}
	c.JSON(http.StatusOK, lc)
}

func notFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": detail})
}
