// Copyright (c) 2026 ClubCompass. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, session manager) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the ClubCompass API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Session store (Redis)
	RedisURL            string        `env:"REDIS_URL,required,notEmpty"`
	SessionStoreTimeout time.Duration `env:"SESSION_STORE_TIMEOUT" envDefault:"2s"`

	// SessionSecret keys the HMAC signature on the session cookie.
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	// ClientDomain is the parent domain every school subdomain lives under
	// (e.g. "clubcompass.app"). It is also the session cookie Domain.
	ClientDomain string `env:"CLIENT_DOMAIN,required,notEmpty"`

	// Schools lists the subdomains recognized as tenants.
	Schools []string `env:"SCHOOL_SUBDOMAINS,required,notEmpty" envSeparator:","`

	// School lookup cache
	SchoolCacheSize int           `env:"SCHOOL_CACHE_SIZE" envDefault:"256"`
	SchoolCacheTTL  time.Duration `env:"SCHOOL_CACHE_TTL"  envDefault:"5m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable only when every request arrives through a proxy that sets them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.ClientDomain = strings.ToLower(strings.Trim(strings.TrimSpace(cfg.ClientDomain), "."))
	cfg.Schools = normalizeSchools(cfg.Schools)

	if len(cfg.Schools) == 0 {
		return nil, fmt.Errorf("config: SCHOOL_SUBDOMAINS must list at least one school")
	}
	if cfg.SessionStoreTimeout <= 0 {
		return nil, fmt.Errorf("config: SESSION_STORE_TIMEOUT must be positive")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigin reports whether origin belongs to the client domain or the
// EXTRA_ORIGINS list.
func (c *Config) AllowedOrigin(origin string) bool {
	origin = strings.ToLower(origin)
	if c.ClientDomain != "" && strings.HasSuffix(origin, "."+c.ClientDomain) {
		return true
	}
	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if extra = strings.TrimSpace(extra); extra != "" && strings.EqualFold(extra, origin) {
			return true
		}
	}
	return false
}

// normalizeSchools lowercases and de-duplicates subdomain names, dropping blanks.
func normalizeSchools(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
