// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package reservationsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type reservationCreateReq struct {
	CustomerID      int64         `json:"customerId" binding:"required"`
	CarID           int64         `json:"carId" binding:"required"`
	ReservationDate *serdser.Date `json:"reservationDate" binding:"required"`
	PickupDate      *serdser.Date `json:"pickupDate" binding:"required"`
	ReturnDate      *serdser.Date `json:"returnDate" binding:"required"`
}

func (req *reservationCreateReq) model() *model.Reservation {
	return &model.Reservation{
		CustomerID:      req.CustomerID,
		CarID:           req.CarID,
		ReservationDate: req.ReservationDate.Time,
		PickupDate:      req.PickupDate.Time,
		ReturnDate:      req.ReturnDate.Time,
	}
}

type reservationUpdateReq struct {
	CustomerID      *int64        `json:"customerId"`
	CarID           *int64        `json:"carId"`
	ReservationDate *serdser.Date `json:"reservationDate"`
	PickupDate      *serdser.Date `json:"pickupDate"`
	ReturnDate      *serdser.Date `json:"returnDate"`
}

func (req *reservationUpdateReq) patch() model.ReservationPatch {
	return model.ReservationPatch{
		CustomerID:      req.CustomerID,
		CarID:           req.CarID,
		ReservationDate: req.ReservationDate.Ptr(),
		PickupDate:      req.PickupDate.Ptr(),
		ReturnDate:      req.ReturnDate.Ptr(),
	}
}

func (rs *resource) CreateReservation(c *gin.Context) {
	req := &reservationCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateReservation(c *gin.Context) {
	req := &reservationUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
