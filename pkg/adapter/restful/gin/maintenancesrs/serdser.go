// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package maintenancesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type maintenanceCreateReq struct {
	CarID       int64         `json:"carId" binding:"required"`
	Date        *serdser.Date `json:"date" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Cost        string        `json:"cost" binding:"required,numeric"`
}

func (req *maintenanceCreateReq) model() *model.Maintenance {
	return &model.Maintenance{
		CarID:       req.CarID,
		Date:        req.Date.Time,
		Description: req.Description,
		Cost:        req.Cost,
	}
}

type maintenanceUpdateReq struct {
	CarID       *int64        `json:"carId"`
	Date        *serdser.Date `json:"date"`
	Description *string       `json:"description"`
	Cost        *string       `json:"cost" binding:"omitempty,numeric"`
}

func (req *maintenanceUpdateReq) patch() model.MaintenancePatch {
	return model.MaintenancePatch{
		CarID:       req.CarID,
		Date:        req.Date.Ptr(),
		Description: req.Description,
		Cost:        req.Cost,
	}
}

func (rs *resource) CreateMaintenance(c *gin.Context) {
	req := &maintenanceCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateMaintenance(c *gin.Context) {
	req := &maintenanceUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
