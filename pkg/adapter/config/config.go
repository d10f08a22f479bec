// Copyright (c) 2025 dev-m-josh
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the carhire binary to instantiate
// components from the adapter or use cases layers using those loaded
// configuration settings. Secrets may be kept out of the file and
// provided through environment variables instead; an optional .env
// file is honored when present. The parsed and validated settings are
// passed to their ultimate components as individual params, so each
// component stays independent of this package.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dev-m-josh/carhire/pkg/adapter/config/settings"
	"github.com/dev-m-josh/carhire/pkg/adapter/db/postgres"
)

// Environment variables overriding their config file counterparts.
// Only secrets are overridable; topology settings stay in the file.
const (
	EnvDBPass     = "CARHIRE_DB_PASS"
	EnvJWTSecret  = "CARHIRE_JWT_SECRET"
	EnvSMTPPass   = "CARHIRE_SMTP_PASS"
	EnvConfigPath = "CARHIRE_CONFIG"
)

// Config contains all configurable settings of the carhire binary.
type Config struct {
	Database Database `yaml:"database"`
	Gin      Gin      `yaml:"gin"`
	Auth     Auth     `yaml:"auth"`
	Mail     Mail     `yaml:"mail"`
}

// Database contains the PostgreSQL connection settings.
type Database struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required,min=1,max=65535"`
	Name string `yaml:"name" validate:"required"`
	User string `yaml:"user" validate:"required"`
	Pass string `yaml:"pass"`
}

// URL returns the database connection URL embedding the host, port,
// database name, and credentials from the `d` settings. The returned
// URL has the postgresql scheme.
func (d Database) URL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String()
}

// ConnectionPool establishes a database connection pool based on the
// `d` settings.
func (d Database) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	return postgres.NewPool(ctx, d.URL())
}

// Gin contains the settings of the HTTP serving layer.
type Gin struct {
	// Addr is the listening address, like :8080 or 127.0.0.1:8080.
	Addr string `yaml:"addr" validate:"required"`

	// Mode selects the gin operation mode.
	Mode string `yaml:"mode" validate:"oneof=debug release test"`

	// Logger and Recovery indicate if the gin.Logger and gin.Recovery
	// middlewares should be registered respectively.
	Logger   bool `yaml:"logger"`
	Recovery bool `yaml:"recovery"`
}

// Auth contains the session token settings.
type Auth struct {
	// JWTSecret is the shared HMAC secret signing session tokens.
	// It should be provided through the CARHIRE_JWT_SECRET environment
	// variable rather than the config file.
	JWTSecret string `yaml:"jwt-secret" validate:"required"`

	// TokenTTL is the session token lifetime.
	TokenTTL settings.Duration `yaml:"token-ttl" validate:"required"`
}

// Mail contains the SMTP settings of the outgoing mail adapter.
// When Enabled is false, outgoing mails are logged and dropped and
// the other fields are ignored.
type Mail struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" validate:"required_if=Enabled true"`
	Username string `yaml:"username" validate:"required_if=Enabled true"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"required_if=Enabled true"`
}

// Default returns a Config instance with the default settings which
// are used for items that the loaded config file leaves unspecified.
func Default() *Config {
	return &Config{
		Database: Database{
			Host: "localhost",
			Port: 5432,
		},
		Gin: Gin{
			Addr:     ":8080",
			Mode:     "release",
			Logger:   true,
			Recovery: true,
		},
		Auth: Auth{
			TokenTTL: settings.Duration(24 * time.Hour),
		},
	}
}

// Load loads, validates, and normalizes the configuration file at the
// given path and returns its settings as a Config instance. A .env
// file in the working directory, if any, is loaded first, so its
// entries can override the file-provided secrets.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshaling yaml: %w", err)
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPass); ok {
		c.Database.Pass = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv(EnvSMTPPass); ok {
		c.Mail.Password = v
	}
}

// Validate checks the settings consistency rules which are described
// in the Config fields tags.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}
