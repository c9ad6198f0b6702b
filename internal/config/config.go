// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

// Package config provides layered configuration management for ReelRank.
//
// Configuration loading order (Koanf v2, highest priority wins):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables (SERVER_PORT, DATABASE_PATH, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	Interactions InteractionsConfig `koanf:"interactions"`
	API          APIConfig          `koanf:"api"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// Timeout bounds read/write on the HTTP server and the per-request
	// budget handed to the recommendation engine.
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds DuckDB catalog store settings.
type DatabaseConfig struct {
	// Path is the DuckDB database file, or ":memory:" for tests.
	Path string `koanf:"path"`

	// MaxMemory is the DuckDB memory limit (e.g. "512MB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count. 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// SeedPath points at an optional JSON movie catalog loaded at
	// startup when the catalog table is empty.
	SeedPath string `koanf:"seed_path"`
}

// InteractionsConfig holds Badger interaction store settings.
type InteractionsConfig struct {
	// Path is the Badger data directory.
	Path string `koanf:"path"`

	// InMemory runs Badger without disk persistence (tests only).
	InMemory bool `koanf:"in_memory"`
}

// APIConfig holds pagination and response limits.
type APIConfig struct {
	// DefaultPageSize is the page size when the caller omits limit.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps the limit query parameter.
	MaxPageSize int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitPerMinute is the per-IP request budget.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`
}

// Validate checks the configuration for invalid values. It returns an
// error describing the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Interactions.Path == "" && !c.Interactions.InMemory {
		return fmt.Errorf("interactions.path must be set unless interactions.in_memory is enabled")
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Security.RateLimitPerMinute < 1 {
		return fmt.Errorf("security.rate_limit_per_minute must be at least 1, got %d",
			c.Security.RateLimitPerMinute)
	}
	return nil
}
