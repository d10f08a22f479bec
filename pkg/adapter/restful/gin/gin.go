// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic framework, hiding it from the
// sibling packages so they can depend on this local package and
// decouple from the version and selection of the gin framework
// itself.
package gin

import "github.com/gin-gonic/gin"

// HandlerFunc is an alias of the gin.HandlerFunc type.
type HandlerFunc = gin.HandlerFunc

// Engine is an alias of the gin.Engine struct type.
type Engine = gin.Engine

// New instantiates a gin engine without any middleware, then
// registers the given middlewares in order.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// SetMode switches the global gin operation mode, one of debug,
// release, or test.
func SetMode(mode string) {
	gin.SetMode(mode)
}

// Logger returns the gin.Logger middleware.
func Logger() HandlerFunc {
	return gin.Logger()
}

// Recovery returns the gin.Recovery middleware.
func Recovery() HandlerFunc {
	return gin.Recovery()
}
