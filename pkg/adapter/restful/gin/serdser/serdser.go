// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the common serialization/deserialization
// helpers of the resource packages: request binding with per-field
// validation error reporting, the shared error response shape, and
// the path param and date parsing helpers.
package serdser

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dev-m-josh/carhire/pkg/core/cerr"
)

// Bind deserializes the request into req using the b binding and
// serializes possible errors with a per-field name to error messages
// mapping. It returns true if binding succeeded and the handler may
// proceed.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// AddErr appends the given error messages to the named entry of the
// errs mapping, allocating the mapping on its first use.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// Assert returns ok, recording the given error messages under the
// named entry of the errs mapping whenever ok is false.
func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr serializes an error which is returned by some use case.
// Errors carrying a cerr.Error select their own status code; all
// other errors are reported as an internal server error.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}

// IDParam parses the named path param as a positive integer entity
// identifier, serializing a bad request error on failure. The second
// return value indicates if the handler may proceed.
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf(
				"path param %s must be a positive integer", name,
			),
		})
		return 0, false
	}
	return id, true
}

// Date accepts both bare dates, like 2024-05-01, and complete RFC
// 3339 timestamps on the wire, decoding them into the embedded
// time.Time instance.
type Date struct {
	time.Time
}

// Ptr returns a pointer to the embedded time instance, mapping a nil
// date to a nil time, as the patch structs expect.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// UnmarshalJSON reifies the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf(
			"date %q matches neither 2006-01-02 nor RFC 3339", s,
		)
	}
	d.Time = t
	return nil
}
