// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes facilitates instantiation and registration of all
// repo, use case, and resource packages based on the user provided
// configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-josh/carhire/pkg/adapter/auth/jwt"
	"github.com/dev-m-josh/carhire/pkg/adapter/config"
	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres/rentalrp"
	"github.com/dev-m-josh/carhire/pkg/adapter/hash/bcrypthash"
	"github.com/dev-m-josh/carhire/pkg/adapter/mail/gomailer"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/authrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/bookingsrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/carsrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/customersrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/insurancesrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/locationsrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/maintenancesrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/middleware"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/paymentsrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/reservationsrs"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/viewsrs"
	"github.com/dev-m-josh/carhire/pkg/core/email"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/authuc"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/cruduc"
	"github.com/dev-m-josh/carhire/pkg/core/usecase/viewsuc"
)

// Register instantiates the repositories and use cases based on the c
// configuration settings. The p connections pool is passed to the use
// case instances, so they may acquire and release connections on
// demand. These connections will be passed to the repositories in
// order to run the relevant queries and accomplish those use cases.
// A series of resource structs, from packages which are named like
// carsrs, adapt the use case interfaces with the REST APIs; they are
// registered as request handlers under /api/v1 using the e gin-gonic
// engine instance. Entity deletion routes are gated behind the bearer
// token and admin middlewares; all other routes are open.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	tokens, err := jwt.New(c.Auth.JWTSecret, c.Auth.TokenTTL.Std())
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}
	hasher := bcrypthash.New()
	var mailer email.Sender = gomailer.Discard{}
	if c.Mail.Enabled {
		mailer = gomailer.New(
			c.Mail.Host, c.Mail.Port,
			c.Mail.Username, c.Mail.Password, c.Mail.From,
		)
	}

	customersRepo := rentalrp.NewCustomers()

	r := e.Group("/api/v1")
	admin := []gin.HandlerFunc{
		middleware.RequireAuth(tokens),
		middleware.RequireAdmin(),
	}

	carsrs.Register(r, cruduc.New[
		model.Car, model.CarPatch,
		repo.CRUDQueryer[model.Car, model.CarPatch],
	](p, rentalrp.NewCars()), admin...)

	locationsrs.Register(r, cruduc.New[
		model.Location, model.LocationPatch,
		repo.CRUDQueryer[model.Location, model.LocationPatch],
	](p, rentalrp.NewLocations()), admin...)

	customersrs.Register(r, cruduc.New[
		model.Customer, model.CustomerPatch, repo.CustomersQueryer,
	](p, customersRepo), hasher, admin...)

	bookingsrs.Register(r, cruduc.New[
		model.Booking, model.BookingPatch,
		repo.CRUDQueryer[model.Booking, model.BookingPatch],
	](p, rentalrp.NewBookings()), admin...)

	reservationsrs.Register(r, cruduc.New[
		model.Reservation, model.ReservationPatch,
		repo.CRUDQueryer[model.Reservation, model.ReservationPatch],
	](p, rentalrp.NewReservations()), admin...)

	paymentsrs.Register(r, cruduc.New[
		model.Payment, model.PaymentPatch,
		repo.CRUDQueryer[model.Payment, model.PaymentPatch],
	](p, rentalrp.NewPayments()), admin...)

	insurancesrs.Register(r, cruduc.New[
		model.Insurance, model.InsurancePatch,
		repo.CRUDQueryer[model.Insurance, model.InsurancePatch],
	](p, rentalrp.NewInsurances()), admin...)

	maintenancesrs.Register(r, cruduc.New[
		model.Maintenance, model.MaintenancePatch,
		repo.CRUDQueryer[model.Maintenance, model.MaintenancePatch],
	](p, rentalrp.NewMaintenances()), admin...)

	viewsrs.Register(r, viewsuc.New(p, rentalrp.NewViews()))
	authrs.Register(r, authuc.New(p, customersRepo, hasher, tokens, mailer))
	return nil
}
