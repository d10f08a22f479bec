// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalrp

import (
	"context"
	"fmt"

	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/model"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

// Customers is the customers repository, covering the uniform CRUD
// contract plus the auth-flow queries (lookup by unique email and the
// verification flag flip).
type Customers struct{}

// NewCustomers instantiates the customers repository.
func NewCustomers() Customers {
	return Customers{}
}

// Conn binds the customer queries to a borrowed connection.
func (Customers) Conn(c repo.Conn) repo.CustomersQueryer {
	return customersQueryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

// Tx binds the customer queries to an ongoing transaction.
func (Customers) Tx(tx repo.Tx) repo.CustomersQueryer {
	return customersQueryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type gCustomer struct {
	ID               int64 `gorm:"primaryKey"`
	FirstName        string
	LastName         string
	Email            string
	PasswordHash     string
	PhoneNumber      string
	Address          string
	IsAdmin          bool
	VerificationCode *string
	IsVerified       bool
}

func (gCustomer) TableName() string {
	return "customers"
}

func (gc gCustomer) Model() *model.Customer {
	return &model.Customer{
		ID:               gc.ID,
		FirstName:        gc.FirstName,
		LastName:         gc.LastName,
		Email:            gc.Email,
		PasswordHash:     gc.PasswordHash,
		PhoneNumber:      gc.PhoneNumber,
		Address:          gc.Address,
		IsAdmin:          gc.IsAdmin,
		VerificationCode: gc.VerificationCode,
		IsVerified:       gc.IsVerified,
	}
}

func newGCustomer(m *model.Customer) *gCustomer {
	return &gCustomer{
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		PhoneNumber:      m.PhoneNumber,
		Address:          m.Address,
		IsAdmin:          m.IsAdmin,
		VerificationCode: m.VerificationCode,
		IsVerified:       m.IsVerified,
	}
}

// customerColumns converts the patch into explicit column
// assignments. Credential columns are not reachable from here; they
// change only through the auth use case.
func customerColumns(p model.CustomerPatch) map[string]any {
	cols := map[string]any{}
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if p.IsAdmin != nil {
		cols["is_admin"] = *p.IsAdmin
	}
	return cols
}

type customersQueryer[Q postgres.Queryer] struct {
	q Q
}

func (cq customersQueryer[Q]) All(ctx context.Context) ([]model.Customer, error) {
	return postgres.All[gCustomer, model.Customer](ctx, cq.q)
}

func (cq customersQueryer[Q]) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	return postgres.ByID[gCustomer, model.Customer](ctx, cq.q, id)
}

func (cq customersQueryer[Q]) Create(ctx context.Context, m *model.Customer) (*model.Customer, error) {
	return postgres.Create[gCustomer, model.Customer](ctx, cq.q, newGCustomer(m))
}

func (cq customersQueryer[Q]) Update(ctx context.Context, id int64, p model.CustomerPatch) (*model.Customer, error) {
	return postgres.Update[gCustomer, model.Customer](ctx, cq.q, id, customerColumns(p))
}

func (cq customersQueryer[Q]) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete[gCustomer](ctx, cq.q, id)
}

func (cq customersQueryer[Q]) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	gdb := cq.q.GORM(ctx)
	var gs []gCustomer
	if err := gdb.Where("email = ?", email).Limit(1).Find(&gs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gs) == 0 {
		return nil, nil
	}
	return gs[0].Model(), nil
}

func (cq customersQueryer[Q]) MarkVerified(ctx context.Context, id int64) (*model.Customer, error) {
	return postgres.Update[gCustomer, model.Customer](ctx, cq.q, id, map[string]any{
		"is_verified": true,
	})
}
