// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by validate to fields left unset by every source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenIssuer     = "diary-keeper"
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "debug"
	DefaultBcryptCost      = 12
	DefaultSessionTimeout  = 1800 * time.Second
	DefaultJanitorInterval = 300 * time.Second
)

// validate fills defaults into the final merged [StructuredConfig] and
// checks that it satisfies all application invariants before it is used
// at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	cfg.applyDefaults()

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.Files.DataDir == "" {
		return fmt.Errorf("%w: data directory is required", ErrInvalidStorageConfigs)
	}

	if cfg.Diary.SessionTimeout < 0 || cfg.Diary.JanitorInterval < 0 {
		return ErrInvalidDiaryConfigs
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}

	if cfg.Diary.SessionTimeout == 0 {
		cfg.Diary.SessionTimeout = DefaultSessionTimeout
	}
	if cfg.Diary.JanitorInterval == 0 {
		cfg.Diary.JanitorInterval = DefaultJanitorInterval
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.DB.Driver == "" && cfg.Storage.DB.DSN != "" {
		cfg.Storage.DB.Driver = inferDriver(cfg.Storage.DB.DSN)
	}
}

// inferDriver treats postgres URLs and key=value DSNs as postgres and
// anything else as a sqlite file path.
func inferDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=") {
		return DriverPostgres
	}
	return DriverSQLite
}
