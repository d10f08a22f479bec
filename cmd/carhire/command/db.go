// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-m-josh/carhire/pkg/adapter/config"
	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
	"github.com/dev-m-josh/carhire/pkg/core/repo"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
The init action creates all missing tables of the expected schema and
leaves existing tables alone, so it is safe to run repeatedly.`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database tables if they do not exist",
	RunE:  initDatabase,
}

func initDatabase(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return postgres.InitSchema(ctx, conn)
	})
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	fmt.Println("database schema is ready")
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
