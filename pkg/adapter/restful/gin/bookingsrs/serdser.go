// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package bookingsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type bookingCreateReq struct {
	CarID           int64         `json:"carId" binding:"required"`
	CustomerID      int64         `json:"customerId" binding:"required"`
	RentalStartDate *serdser.Date `json:"rentalStartDate" binding:"required"`
	RentalEndDate   *serdser.Date `json:"rentalEndDate" binding:"required"`
	TotalAmount     string        `json:"totalAmount" binding:"required,numeric"`
}

func (req *bookingCreateReq) model() *model.Booking {
	return &model.Booking{
		CarID:           req.CarID,
		CustomerID:      req.CustomerID,
		RentalStartDate: req.RentalStartDate.Time,
		RentalEndDate:   req.RentalEndDate.Time,
		TotalAmount:     req.TotalAmount,
	}
}

type bookingUpdateReq struct {
	CarID           *int64        `json:"carId"`
	CustomerID      *int64        `json:"customerId"`
	RentalStartDate *serdser.Date `json:"rentalStartDate"`
	RentalEndDate   *serdser.Date `json:"rentalEndDate"`
	TotalAmount     *string       `json:"totalAmount" binding:"omitempty,numeric"`
}

func (req *bookingUpdateReq) patch() model.BookingPatch {
	return model.BookingPatch{
		CarID:           req.CarID,
		CustomerID:      req.CustomerID,
		RentalStartDate: req.RentalStartDate.Ptr(),
		RentalEndDate:   req.RentalEndDate.Ptr(),
		TotalAmount:     req.TotalAmount,
	}
}

func (rs *resource) CreateBooking(c *gin.Context) {
	req := &bookingCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateBooking(c *gin.Context) {
	req := &bookingUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
