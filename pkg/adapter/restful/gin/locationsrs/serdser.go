// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package locationsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type locationCreateReq struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
}

func (req *locationCreateReq) model() *model.Location {
	return &model.Location{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}
}

type locationUpdateReq struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
}

func (req *locationUpdateReq) patch() model.LocationPatch {
	return model.LocationPatch{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
	}
}

func (rs *resource) CreateLocation(c *gin.Context) {
	req := &locationCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateLocation(c *gin.Context) {
	req := &locationUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
