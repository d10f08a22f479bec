// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package crudrs realizes the REST side of the uniform CRUD contract
// once, as a generic Resource which the entity resource packages
// embed. Listing, fetching, and deletion are entity-independent;
// creation and update stay in the entity packages since only they
// know their request shapes.
package crudrs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/serdser"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
)

// Resource adapts one generic CRUD use case with the REST APIs of a
// single entity. Name is the lowercase singular entity name as it
// should appear in not-found and deletion messages.
type Resource[M, P any, Q repo.CRUDQueryer[M, P]] struct {
	Name string
	UC   *cruduc.UseCase[M, P, Q]
}

// New instantiates a Resource adapting the given use case.
func New[M, P any, Q repo.CRUDQueryer[M, P]](
	name string, uc *cruduc.UseCase[M, P, Q],
) Resource[M, P, Q] {
	return Resource[M, P, Q]{Name: name, UC: uc}
}

// List handles the GET collection route, responding with a possibly
// empty JSON array of all entity instances.
func (rs Resource[M, P, Q]) List(c *gin.Context) {
	ms, err := rs.UC.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// Get handles the GET by-id route, responding with the entity
// instance or a not-found error.
func (rs Resource[M, P, Q]) Get(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	m, err := rs.UC.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if m == nil {
		rs.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles the DELETE by-id route. Exactly one request per id
// can observe the success message; later ones get a not-found error.
func (rs Resource[M, P, Q]) Delete(c *gin.Context) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := rs.UC.Delete(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !deleted {
		rs.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": rs.Name + " deleted successfully",
	})
}

// Create persists the already deserialized entity instance and
// responds with the persisted row, including its generated id.
func (rs Resource[M, P, Q]) Create(c *gin.Context, in *M) {
	m, err := rs.UC.Create(c, in)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Update applies the already deserialized patch to the entity with
// the :id path param and responds with the updated row.
func (rs Resource[M, P, Q]) Update(c *gin.Context, patch P) {
	id, ok := serdser.IDParam(c, "id")
	if !ok {
		return
	}
	m, err := rs.UC.Update(c, id, patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if m == nil {
		rs.NotFound(c)
		return
	}
	c.JSON(http.StatusOK, m)
}

// NotFound serializes the entity specific not-found error.
func (rs Resource[M, P, Q]) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"detail": rs.Name + " not found",
	})
}
