// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package insurancesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type insuranceCreateReq struct {
	CarID        int64         `json:"carId" binding:"required"`
	Provider     string        `json:"provider" binding:"required"`
	PolicyNumber string        `json:"policyNumber" binding:"required"`
	StartDate    *serdser.Date `json:"startDate" binding:"required"`
	EndDate      *serdser.Date `json:"endDate" binding:"required"`
}

func (req *insuranceCreateReq) model() *model.Insurance {
	return &model.Insurance{
		CarID:        req.CarID,
		Provider:     req.Provider,
		PolicyNumber: req.PolicyNumber,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
	}
}

type insuranceUpdateReq struct {
	CarID        *int64        `json:"carId"`
	Provider     *string       `json:"provider"`
	PolicyNumber *string       `json:"policyNumber"`
	StartDate    *serdser.Date `json:"startDate"`
	EndDate      *serdser.Date `json:"endDate"`
}

func (req *insuranceUpdateReq) patch() model.InsurancePatch {
	return model.InsurancePatch{
		CarID:        req.CarID,
		Provider:     req.Provider,
		PolicyNumber: req.PolicyNumber,
		StartDate:    req.StartDate.Ptr(),
		EndDate:      req.EndDate.Ptr(),
	}
}

func (rs *resource) CreateInsurance(c *gin.Context) {
	req := &insuranceCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Create(c, req.model())
}

func (rs *resource) UpdateInsurance(c *gin.Context) {
	req := &insuranceUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
