// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the carhire
// web project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command manages the database schema.
//
//	./carhire [-c /path/of/config.yaml]          # start web server
//	./carhire db init [-c /path/of/config.yaml]  # create the tables
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dev-m-josh/carhire/pkg/adapter/config"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/middleware"
	"github.com/dev-m-josh/carhire/pkg/adapter/restful/gin/routes"
	"github.com/dev-m-josh/carhire/pkg/core/log"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "carhire",
	Short: "Car rental management REST service",
	Long: `A car rental management REST service covering the rental
inventory (locations, cars, insurance policies, and maintenance
records), the rental lifecycle (reservations, bookings, and payments),
and the customer accounts with registration, login, and mail-based
account verification. The service keeps its core use cases and models
independent of the adapters layer, interacting with PostgreSQL through
GORM and pgx and serving the REST APIs with the Gin Gonic framework.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	log.Setup(slog.LevelInfo)
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	gin.SetMode(c.Gin.Mode)
	mws := []gin.HandlerFunc{middleware.RequestID()}
	if c.Gin.Logger {
		mws = append(mws, gin.Logger())
	}
	if c.Gin.Recovery {
		mws = append(mws, gin.Recovery())
	}
	e := gin.New(mws...)
	if err = routes.Register(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(ctx, "serving", slog.String("addr", c.Gin.Addr))
	if err = e.Run(c.Gin.Addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either
// the CLI args, the CARHIRE_CONFIG environment variable, or its
// default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv(config.EnvConfigPath); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}
