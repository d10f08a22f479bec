// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authrs realizes the authentication resource, covering
// registration, login, and account verification.
package authrs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/authuc"
)

type resource struct {
	auth *authuc.UseCase
}

// Register instantiates a resource adapting the auth use case with
// the relevant REST APIs including:
//  1. POST requests to auth/register
//  2. POST requests to auth/login
//  3. POST requests to auth/verify
func Register(r *gin.RouterGroup, auth *authuc.UseCase) {
	rs := &resource{auth: auth}
	r.POST("auth/register", rs.Register)
	r.POST("auth/login", rs.Login)
	r.POST("auth/verify", rs.Verify)
}

func (rs *resource) Register(c *gin.Context) {
	req := rs.DserRegisterReq(c)
	if req == nil {
		return
	}
	s, err := rs.auth.Register(c, req.registration())
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful, check your mail for the verification code",
		"user":    s.User,
		"token":   s.Token,
	})
}

func (rs *resource) Login(c *gin.Context) {
	req := rs.DserLoginReq(c)
	if req == nil {
		return
	}
	s, err := rs.auth.Login(c, req.Email, req.Password)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    s.User,
		"token":   s.Token,
	})
}

func (rs *resource) Verify(c *gin.Context) {
	req := rs.DserVerifyReq(c)
	if req == nil {
		return
	}
	if _, err := rs.auth.Verify(c, req.Email, req.Code); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "account verified successfully",
	})
}
