// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package authrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/model"
)

type registerReq struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

func (req *registerReq) registration() model.Registration {
	return model.Registration{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type verifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

func (rs *resource) DserRegisterReq(c *gin.Context) *registerReq {
	req := &registerReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return nil
	}
	return req
}

func (rs *resource) DserLoginReq(c *gin.Context) *loginReq {
	req := &loginReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return nil
	}
	return req
}

func (rs *resource) DserVerifyReq(c *gin.Context) *verifyReq {
	req := &verifyReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return nil
	}
	return req
}
