// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package customersrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type customerCreateReq struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	IsAdmin     bool   `json:"isAdmin"`
	IsVerified  bool   `json:"isVerified"`
}

func (req *customerCreateReq) model(passwordHash string) *model.Customer {
	return &model.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		IsAdmin:      req.IsAdmin,
		IsVerified:   req.IsVerified,
	}
}

type customerUpdateReq struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	IsAdmin     *bool   `json:"isAdmin"`
}

func (req *customerUpdateReq) patch() model.CustomerPatch {
	return model.CustomerPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsAdmin:     req.IsAdmin,
	}
}

func (rs *resource) CreateCustomer(c *gin.Context) {
	req := &customerCreateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	hashed, err := rs.hasher.Hash(req.Password)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.Create(c, req.model(hashed))
}

func (rs *resource) UpdateCustomer(c *gin.Context) {
	req := &customerUpdateReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return
	}
	rs.Update(c, req.patch())
}
