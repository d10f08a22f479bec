// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package middleware contains the cross-resource gin middlewares:
// request identification and the bearer token authentication and
// authorization gates.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dev-m-josh/carhire/pkg/core/token"
)

// Context keys of the values which are stored by these middlewares.
const (
	claimsKey    = "carhire-session-claims"
	requestIDKey = "carhire-request-id"
)

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns a fresh UUID to each incoming request, exposing
// it as a response header and through the RequestIDOf function, so
// log lines and error reports can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDOf returns the request id which RequestID assigned to this
// request, if any.
func RequestIDOf(c *gin.Context) (string, bool) {
	id, ok := c.Value(requestIDKey).(string)
	return id, ok
}

// RequireAuth verifies the bearer token of the Authorization header
// using the given issuer and stores its session claims in the request
// context for the ClaimsOf function. Requests without a valid token
// are rejected with a 401 status code.
func RequireAuth(tokens token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		scheme, tok, found := strings.Cut(auth, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abort(c, http.StatusUnauthorized, "bearer token is required")
			return
		}
		claims, err := tokens.Verify(strings.TrimSpace(tok))
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose session claims, as stored by a
// preceding RequireAuth middleware, do not carry the admin marker.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsOf(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "bearer token is required")
			return
		}
		if !claims.IsAdmin {
			abort(c, http.StatusForbidden, "admin privileges are required")
			return
		}
		c.Next()
	}
}

// ClaimsOf returns the session claims which RequireAuth stored in the
// request context, if any.
func ClaimsOf(c *gin.Context) (*token.Claims, bool) {
	claims, ok := c.Value(claimsKey).(*token.Claims)
	return claims, ok
}

func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
