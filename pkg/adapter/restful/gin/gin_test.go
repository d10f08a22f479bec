// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"github.com/dev-m-josh/carhire/internal/test/dbcontainer"
	"github.com/dev-m-josh/carhire/pkg/adapter/config"
	"github.com/dev-m-josh/carhire/pkg/adapter/config/settings"
	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/routes"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return postgres.InitSchema(ctx, c)
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	gin.SetMode("test")
	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	c := config.Default()
	c.Auth.JWTSecret = "integration-test-secret"
	c.Auth.TokenTTL = settings.Duration(time.Hour)
	err = routes.Register(igts.Gin, igts.Pool, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func (igts *IntegrationGinTestSuite) request(
	method, path, token string, body any,
) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		igts.Require().NoError(err, "failed to marshal request body")
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	return w
}

func (igts *IntegrationGinTestSuite) decode(
	w *httptest.ResponseRecorder, dst any,
) {
	igts.Require().NoError(
		json.Unmarshal(w.Body.Bytes(), dst),
		"failed to unmarshal response: %s", w.Body.String(),
	)
}

// adminToken provisions a verified admin account through the
// customers resource and logs it in, returning a bearer token.
func (igts *IntegrationGinTestSuite) adminToken(email string) string {
	w := igts.request(http.MethodPost, "/customers", "", map[string]any{
		"firstName":   "Ada",
		"lastName":    "Admin",
		"email":       email,
		"password":    "admin-pass-123",
		"phoneNumber": "+254711111111",
		"address":     "HQ",
		"isAdmin":     true,
		"isVerified":  true,
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = igts.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": "admin-pass-123",
	})
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	igts.decode(w, &resp)
	igts.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (igts *IntegrationGinTestSuite) createLocation(name string) model.Location {
	w := igts.request(http.MethodPost, "/locations", "", map[string]any{
		"name":          name,
		"address":       "Moi Avenue",
		"contactNumber": "+254720000000",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var loc model.Location
	igts.decode(w, &loc)
	igts.Require().NotZero(loc.ID)
	return loc
}

func (igts *IntegrationGinTestSuite) createCar(locationID int64) model.Car {
	w := igts.request(http.MethodPost, "/cars", "", map[string]any{
		"model":      "Corolla",
		"year":       2021,
		"color":      "silver",
		"rentalRate": "54.99",
		"locationId": locationID,
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var car model.Car
	igts.decode(w, &car)
	igts.Require().NotZero(car.ID)
	return car
}

func (igts *IntegrationGinTestSuite) TestCarCRUD() {
	loc := igts.createLocation("CRUD branch")
	car := igts.createCar(loc.ID)
	igts.Equal("54.99", car.RentalRate)
	igts.True(car.Availability, "availability must default to true")

	w := igts.request(http.MethodGet, fmt.Sprintf("/cars/%d", car.ID), "", nil)
	igts.Equal(http.StatusOK, w.Code)
	var got model.Car
	igts.decode(w, &got)
	igts.Equal(car, got)

	w = igts.request(http.MethodGet, "/cars", "", nil)
	igts.Equal(http.StatusOK, w.Code)
	var cars []model.Car
	igts.decode(w, &cars)
	igts.NotEmpty(cars)

	w = igts.request(
		http.MethodPut, fmt.Sprintf("/cars/%d", car.ID), "",
		map[string]any{"color": "black"},
	)
	igts.Equal(http.StatusOK, w.Code, w.Body.String())
	igts.decode(w, &got)
	igts.Equal("black", got.Color)
	igts.Equal(car.Model, got.Model, "untouched fields must survive")
	igts.Equal(car.RentalRate, got.RentalRate)

	w = igts.request(http.MethodGet, "/cars/999999", "", nil)
	igts.Equal(http.StatusNotFound, w.Code)

	w = igts.request(http.MethodGet, "/cars/not-a-number", "", nil)
	igts.Equal(http.StatusBadRequest, w.Code)
}

func (igts *IntegrationGinTestSuite) TestCarValidation() {
	w := igts.request(http.MethodPost, "/cars", "", map[string]any{
		"model": "Incomplete",
	})
	igts.Equal(http.StatusBadRequest, w.Code)

	w = igts.request(http.MethodPost, "/cars", "", map[string]any{
		"model":      "BadRate",
		"year":       2021,
		"color":      "red",
		"rentalRate": "cheap",
		"locationId": 1,
	})
	igts.Equal(http.StatusBadRequest, w.Code)
}

func (igts *IntegrationGinTestSuite) TestDeleteIsAdminGated() {
	loc := igts.createLocation("Delete branch")
	car := igts.createCar(loc.ID)
	path := fmt.Sprintf("/cars/%d", car.ID)

	w := igts.request(http.MethodDelete, path, "", nil)
	igts.Equal(http.StatusUnauthorized, w.Code)

	// a normal registered user is authenticated but not authorized
	w = igts.request(http.MethodPost, "/auth/register", "", map[string]any{
		"firstName":   "Norah",
		"lastName":    "Normal",
		"email":       "norah@example.com",
		"password":    "normal-pass-123",
		"phoneNumber": "+254722222222",
		"address":     "Nairobi",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		Token string `json:"token"`
	}
	igts.decode(w, &reg)
	w = igts.request(http.MethodDelete, path, reg.Token, nil)
	igts.Equal(http.StatusForbidden, w.Code)

	admin := igts.adminToken("delete-admin@example.com")
	w = igts.request(http.MethodDelete, path, admin, nil)
	igts.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Message string `json:"message"`
	}
	igts.decode(w, &resp)
	igts.Equal("car deleted successfully", resp.Message)

	// exactly one delete per id may succeed
	w = igts.request(http.MethodDelete, path, admin, nil)
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestAuthFlow() {
	register := map[string]any{
		"firstName":   "Jane",
		"lastName":    "Mwangi",
		"email":       "jane@example.com",
		"password":    "s3cret-pass",
		"phoneNumber": "+254700000000",
		"address":     "Nairobi",
	}
	w := igts.request(http.MethodPost, "/auth/register", "", register)
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		User  model.Customer `json:"user"`
		Token string         `json:"token"`
	}
	igts.decode(w, &reg)
	igts.NotZero(reg.User.ID)
	igts.False(reg.User.IsVerified)
	igts.NotEmpty(reg.Token)
	igts.NotContains(
		w.Body.String(), "s3cret-pass",
		"plaintext password must never be serialized",
	)
	igts.NotContains(
		w.Body.String(), "passwordHash",
		"password hash must never be serialized",
	)

	w = igts.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "wrong-pass",
	})
	igts.Equal(http.StatusUnauthorized, w.Code)
	unknown := igts.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "ghost@example.com",
		"password": "s3cret-pass",
	})
	igts.Equal(http.StatusUnauthorized, unknown.Code)
	igts.Equal(
		w.Body.String(), unknown.Body.String(),
		"wrong password and unknown email must be indistinguishable",
	)

	// the mailer is disabled in tests; read the code back through the
	// customers resource instead of a mailbox
	w = igts.request(
		http.MethodGet, fmt.Sprintf("/customers/%d", reg.User.ID), "", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code)
	var stored model.Customer
	igts.decode(w, &stored)
	igts.Require().NotNil(stored.VerificationCode)
	igts.Regexp(`^[0-9A-F]{6}$`, *stored.VerificationCode)

	w = igts.request(http.MethodPost, "/auth/verify", "", map[string]any{
		"email": "jane@example.com",
		"code":  "000000",
	})
	igts.Equal(http.StatusUnauthorized, w.Code)

	w = igts.request(http.MethodPost, "/auth/verify", "", map[string]any{
		"email": "jane@example.com",
		"code":  *stored.VerificationCode,
	})
	igts.Equal(http.StatusOK, w.Code, w.Body.String())

	w = igts.request(http.MethodPost, "/auth/verify", "", map[string]any{
		"email": "jane@example.com",
		"code":  *stored.VerificationCode,
	})
	igts.Equal(
		http.StatusUnauthorized, w.Code,
		"verification must be one-way and the code single-use",
	)

	w = igts.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "s3cret-pass",
	})
	igts.Equal(http.StatusOK, w.Code)
	var login struct {
		User model.Customer `json:"user"`
	}
	igts.decode(w, &login)
	igts.True(login.User.IsVerified)
}

func (igts *IntegrationGinTestSuite) TestComposedViews() {
	loc := igts.createLocation("Views branch")
	car := igts.createCar(loc.ID)

	w := igts.request(http.MethodPost, "/customers", "", map[string]any{
		"firstName":   "Viola",
		"lastName":    "Views",
		"email":       "viola@example.com",
		"password":    "viola-pass-123",
		"phoneNumber": "+254733333333",
		"address":     "Mombasa",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var customer model.Customer
	igts.decode(w, &customer)

	w = igts.request(http.MethodPost, "/bookings", "", map[string]any{
		"carId":           car.ID,
		"customerId":      customer.ID,
		"rentalStartDate": "2024-05-01",
		"rentalEndDate":   "2024-05-07",
		"totalAmount":     "330.00",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var booking model.Booking
	igts.decode(w, &booking)

	// no payment yet, so the payment view reports a missing row
	w = igts.request(
		http.MethodGet, fmt.Sprintf("/bookings/%d/payment", booking.ID),
		"", nil,
	)
	igts.Equal(http.StatusNotFound, w.Code)

	w = igts.request(
		http.MethodGet, fmt.Sprintf("/bookings/%d/details", booking.ID),
		"", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var details model.BookingDetails
	igts.decode(w, &details)
	igts.Equal(booking.ID, details.Booking.ID)
	igts.Equal(customer.ID, details.Customer.ID)
	igts.Equal(car.ID, details.Car.ID)
	igts.Equal(loc.ID, details.Location.ID)

	w = igts.request(http.MethodPost, "/payments", "", map[string]any{
		"bookingId":     booking.ID,
		"paymentDate":   "2024-05-07",
		"amount":        "330.00",
		"paymentMethod": "card",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var payment model.Payment
	igts.decode(w, &payment)

	w = igts.request(
		http.MethodGet, fmt.Sprintf("/bookings/%d/payment", booking.ID),
		"", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var paid model.BookingWithPayment
	igts.decode(w, &paid)
	igts.Equal(payment.ID, paid.Payment.ID)
	igts.Equal("330.00", paid.Payment.Amount)

	w = igts.request(
		http.MethodGet, fmt.Sprintf("/customers/%d/details", customer.ID),
		"", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var rows []model.CustomerBookingRow
	igts.decode(w, &rows)
	igts.Require().Len(rows, 1)
	igts.Require().NotNil(rows[0].Booking)
	igts.Equal(booking.ID, rows[0].Booking.ID)
	igts.Require().NotNil(rows[0].Car)
	igts.Equal(car.ID, rows[0].Car.ID)

	// a customer without bookings still yields one row
	w = igts.request(http.MethodPost, "/customers", "", map[string]any{
		"firstName":   "Bare",
		"lastName":    "Bones",
		"email":       "bare@example.com",
		"password":    "bare-pass-1234",
		"phoneNumber": "+254744444444",
		"address":     "Kisumu",
	})
	igts.Require().Equal(http.StatusCreated, w.Code)
	var bare model.Customer
	igts.decode(w, &bare)
	w = igts.request(
		http.MethodGet, fmt.Sprintf("/customers/%d/details", bare.ID),
		"", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code)
	igts.decode(w, &rows)
	igts.Require().Len(rows, 1)
	igts.Nil(rows[0].Booking)
	igts.Nil(rows[0].Car)

	w = igts.request(
		http.MethodGet, fmt.Sprintf("/locations/%d/cars", loc.ID), "", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var lc model.LocationWithCars
	igts.decode(w, &lc)
	igts.Equal(loc.ID, lc.Location.ID)
	igts.Require().Len(lc.Cars, 1)
	igts.Equal(car.ID, lc.Cars[0].ID)

	// a location without cars aggregates an empty array, not null
	empty := igts.createLocation("Empty branch")
	w = igts.request(
		http.MethodGet, fmt.Sprintf("/locations/%d/cars", empty.ID),
		"", nil,
	)
	igts.Require().Equal(http.StatusOK, w.Code)
	igts.Contains(w.Body.String(), `"cars":[]`)

	w = igts.request(http.MethodGet, "/locations/999999/cars", "", nil)
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestReservationAndMaintenanceCRUD() {
	loc := igts.createLocation("Side branch")
	car := igts.createCar(loc.ID)

	w := igts.request(http.MethodPost, "/customers", "", map[string]any{
		"firstName":   "Rese",
		"lastName":    "Rver",
		"email":       "rese@example.com",
		"password":    "rese-pass-1234",
		"phoneNumber": "+254755555555",
		"address":     "Nakuru",
	})
	igts.Require().Equal(http.StatusCreated, w.Code)
	var customer model.Customer
	igts.decode(w, &customer)

	w = igts.request(http.MethodPost, "/reservations", "", map[string]any{
		"customerId":      customer.ID,
		"carId":           car.ID,
		"reservationDate": "2024-04-20",
		"pickupDate":      "2024-05-01",
		"returnDate":      "2024-05-07",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reservation model.Reservation
	igts.decode(w, &reservation)
	igts.NotZero(reservation.ID)

	w = igts.request(http.MethodPost, "/maintenance", "", map[string]any{
		"carId":       car.ID,
		"date":        "2024-04-25",
		"description": "oil change",
		"cost":        "45.00",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var maintenance model.Maintenance
	igts.decode(w, &maintenance)
	igts.Equal("45.00", maintenance.Cost)

	w = igts.request(http.MethodPost, "/insurance", "", map[string]any{
		"carId":        car.ID,
		"provider":     "Jubilee",
		"policyNumber": "POL-123",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
	})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var insurance model.Insurance
	igts.decode(w, &insurance)
	igts.Equal("POL-123", insurance.PolicyNumber)
}
