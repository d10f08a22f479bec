// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paymentsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type paymentCreateReq struct {
	BookingID     int64         `json:"bookingId" binding:"required"`
	PaymentDate   *serdser.Date `json:"paymentDate" binding:"required"`
	Amount        string        `json:"amount" binding:"required,numeric"`
	PaymentMethod string        `json:"paymentMethod" binding:"required"`
}

func (req *paymentCreateReq) model() *model.Payment {
	return &model.Payment{
		BookingID:     req.BookingID,
		PaymentDate:   req.PaymentDate.Time,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
}

type paymentUpdateReq struct {
	BookingID     *int64        `json:"bookingId"`
	PaymentDate   *serdser.Date `json:"paymentDate"`
	Amount        *string       `json:"amount" binding:"omitempty,numeric"`
	PaymentMethod *string       `json:"paymentMethod"`
}

func (req *paymentUpdateReq) patch() model.PaymentPatch {
	return model.PaymentPatch{
		BookingID:     req.BookingID,
		PaymentDate:   req.PaymentDate.Ptr(),
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
}

func (rs *resource) CreatePayment(c *gin.Context) {
	req := &paymentCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdatePayment(c *gin.Context) {
	req := &paymentUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
