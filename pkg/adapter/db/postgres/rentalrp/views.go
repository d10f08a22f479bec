// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalrp

import (
	"context"
	"fmt"
	"time"

	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// Views is the composed-views repository. Every view is one join
// statement whose select list aliases each column with a per-entity
// prefix, so the row structs below can pick the right columns apart
// again through their embedded prefixes. No view opens a transaction
// and none imposes an ORDER BY; row order is storage-determined.
type Views struct{}

// NewViews instantiates the composed-views repository.
func NewViews() Views {
	return Views{}
}

// Conn binds the view queries to a borrowed connection.
func (Views) Conn(c repo.Conn) repo.ViewsQueryer {
	return viewsQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

// Tx binds the view queries to an ongoing transaction.
func (Views) Tx(tx repo.Tx) repo.ViewsQueryer {
	return viewsQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

// Aliased select lists, one per joined entity. The aliases must stay
// in lockstep with the embeddedPrefix tags of the row structs below.
const (
	bookingCols = `b.id AS bk_id, b.car_id AS bk_car_id,
		b.customer_id AS bk_customer_id,
		b.rental_start_date AS bk_rental_start_date,
		b.rental_end_date AS bk_rental_end_date,
		b.total_amount AS bk_total_amount`

	customerCols = `c.id AS cu_id, c.first_name AS cu_first_name,
		c.last_name AS cu_last_name, c.email AS cu_email,
		c.password_hash AS cu_password_hash,
		c.phone_number AS cu_phone_number, c.address AS cu_address,
		c.is_admin AS cu_is_admin,
		c.verification_code AS cu_verification_code,
		c.is_verified AS cu_is_verified`

	carCols = `r.id AS ca_id, r.model AS ca_model, r.year AS ca_year,
		r.color AS ca_color, r.rental_rate AS ca_rental_rate,
		r.availability AS ca_availability,
		r.location_id AS ca_location_id`

	locationCols = `l.id AS lo_id, l.name AS lo_name,
		l.address AS lo_address, l.contact_number AS lo_contact_number`

	paymentCols = `p.id AS pa_id, p.booking_id AS pa_booking_id,
		p.payment_date AS pa_payment_date, p.amount AS pa_amount,
		p.payment_method AS pa_payment_method`
)

const bookingDetailsSQL = `SELECT ` +
	bookingCols + `, ` + customerCols + `, ` + carCols + `, ` + locationCols + `
	FROM bookings b
	INNER JOIN customers c ON c.id = b.customer_id
	INNER JOIN cars r ON r.id = b.car_id
	INNER JOIN locations l ON l.id = r.location_id
	WHERE b.id = ?`

const bookingWithPaymentSQL = `SELECT ` +
	bookingCols + `, ` + customerCols + `, ` + carCols + `, ` + paymentCols + `
	FROM bookings b
	INNER JOIN customers c ON c.id = b.customer_id
	INNER JOIN cars r ON r.id = b.car_id
	INNER JOIN payments p ON p.booking_id = b.id
	WHERE b.id = ?`

const customerDetailsSQL = `SELECT ` +
	customerCols + `, ` + bookingCols + `, ` + carCols + `
	FROM customers c
	LEFT JOIN bookings b ON b.customer_id = c.id
	LEFT JOIN cars r ON r.id = b.car_id
	WHERE c.id = ?`

const locationWithCarsSQL = `SELECT ` +
	locationCols + `, ` + carCols + `
	FROM locations l
	LEFT JOIN cars r ON r.location_id = l.id
	WHERE l.id = ?`

type gBookingDetailsRow struct {
	Booking  gBooking  `gorm:"embedded;embeddedPrefix:bk_"`
	Customer gCustomer `gorm:"embedded;embeddedPrefix:cu_"`
	Car      gCar      `gorm:"embedded;embeddedPrefix:ca_"`
	Location gLocation `gorm:"embedded;embeddedPrefix:lo_"`
}

type gBookingWithPaymentRow struct {
	Booking  gBooking  `gorm:"embedded;embeddedPrefix:bk_"`
	Customer gCustomer `gorm:"embedded;embeddedPrefix:cu_"`
	Car      gCar      `gorm:"embedded;embeddedPrefix:ca_"`
	Payment  gPayment  `gorm:"embedded;embeddedPrefix:pa_"`
}

type gCustomerDetailsRow struct {
	Customer gCustomer    `gorm:"embedded;embeddedPrefix:cu_"`
	Booking  gBookingNull `gorm:"embedded;embeddedPrefix:bk_"`
	Car      gCarNull     `gorm:"embedded;embeddedPrefix:ca_"`
}

type gLocationWithCarsRow struct {
	Location gLocation `gorm:"embedded;embeddedPrefix:lo_"`
	Car      gCarNull  `gorm:"embedded;embeddedPrefix:ca_"`
}

// gBookingNull is the booking row as produced by a left join: all
// columns nullable at once. A nil ID means the join matched nothing;
// the remaining columns are NOT NULL in the schema, so they are
// dereferenced without further checks once ID is present.
type gBookingNull struct {
	ID              *int64
	CarID           *int64
	CustomerID      *int64
	RentalStartDate *time.Time
	RentalEndDate   *time.Time
	TotalAmount     *string
}

func (gb gBookingNull) Model() *model.Booking {
	if gb.ID == nil {
		return nil
	}
	return &model.Booking{
		ID:              *gb.ID,
		CarID:           *gb.CarID,
		CustomerID:      *gb.CustomerID,
		RentalStartDate: *gb.RentalStartDate,
		RentalEndDate:   *gb.RentalEndDate,
		TotalAmount:     *gb.TotalAmount,
	}
}

// gCarNull is the car row as produced by a left join, see
// gBookingNull.
type gCarNull struct {
	ID           *int64
	CarModel     *string `gorm:"column:model"`
	Year         *int
	Color        *string
	RentalRate   *string
	Availability *bool
	LocationID   *int64
}

func (gc gCarNull) Model() *model.Car {
	if gc.ID == nil {
		return nil
	}
	return &model.Car{
		ID:           *gc.ID,
		Model:        *gc.CarModel,
		Year:         *gc.Year,
		Color:        *gc.Color,
		RentalRate:   *gc.RentalRate,
		Availability: *gc.Availability,
		LocationID:   *gc.LocationID,
	}
}

type viewsQueryer[Q postgres.Queryer] struct {
	q Q
}

func (vq viewsQueryer[Q]) BookingDetails(ctx context.Context, bookingID int64) (*model.BookingDetails, error) {
	gdb := vq.q.GORM(ctx)
	var rows []gBookingDetailsRow
	if err := gdb.Raw(bookingDetailsSQL, bookingID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	r := rows[0]
	return &model.BookingDetails{
		Booking:  *r.Booking.Model(),
		Customer: *r.Customer.Model(),
		Car:      *r.Car.Model(),
		Location: *r.Location.Model(),
	}, nil
}

func (vq viewsQueryer[Q]) BookingWithPayment(ctx context.Context, bookingID int64) (*model.BookingWithPayment, error) {
	gdb := vq.q.GORM(ctx)
	var rows []gBookingWithPaymentRow
	if err := gdb.Raw(bookingWithPaymentSQL, bookingID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	r := rows[0]
	return &model.BookingWithPayment{
		Booking:  *r.Booking.Model(),
		Customer: *r.Customer.Model(),
		Car:      *r.Car.Model(),
		Payment:  *r.Payment.Model(),
	}, nil
}

func (vq viewsQueryer[Q]) CustomerDetails(ctx context.Context, customerID int64) ([]model.CustomerBookingRow, error) {
	gdb := vq.q.GORM(ctx)
	var rows []gCustomerDetailsRow
	if err := gdb.Raw(customerDetailsSQL, customerID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]model.CustomerBookingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CustomerBookingRow{
			Customer: *r.Customer.Model(),
			Booking:  r.Booking.Model(),
			Car:      r.Car.Model(),
		})
	}
	return out, nil
}

func (vq viewsQueryer[Q]) LocationWithCars(ctx context.Context, locationID int64) (*model.LocationWithCars, error) {
	gdb := vq.q.GORM(ctx)
	var rows []gLocationWithCarsRow
	if err := gdb.Raw(locationWithCarsSQL, locationID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	lc := &model.LocationWithCars{
		Location: *rows[0].Location.Model(),
		Cars:     make([]model.Car, 0, len(rows)),
	}
	for _, r := range rows {
		if car := r.Car.Model(); car != nil {
			lc.Cars = append(lc.Cars, *car)
		}
	}
	return lc, nil
}
