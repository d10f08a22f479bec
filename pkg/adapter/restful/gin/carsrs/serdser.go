// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type carCreateReq struct {
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required,min=1900"`
	Color        string `json:"color" binding:"required"`
	RentalRate   string `json:"rentalRate" binding:"required,numeric"`
	Availability *bool  `json:"availability"`
	LocationID   int64  `json:"locationId" binding:"required"`
}

func (req *carCreateReq) model() *model.Car {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}
	return &model.Car{
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		RentalRate:   req.RentalRate,
		Availability: availability,
		LocationID:   req.LocationID,
	}
}

type carUpdateReq struct {
	Model        *string `json:"model"`
	Year         *int    `json:"year" binding:"omitempty,min=1900"`
	Color        *string `json:"color"`
	RentalRate   *string `json:"rentalRate" binding:"omitempty,numeric"`
	Availability *bool   `json:"availability"`
	LocationID   *int64  `json:"locationId"`
}

func (req *carUpdateReq) patch() model.CarPatch {
	return model.CarPatch{
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		RentalRate:   req.RentalRate,
		Availability: req.Availability,
		LocationID:   req.LocationID,
	}
}

func (rs *resource) CreateCar(c *gin.Context) {
	req := &carCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateCar(c *gin.Context) {
	req := &carUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
