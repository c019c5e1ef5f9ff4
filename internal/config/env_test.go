// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_LOG_LEVEL":      "warn",
		"APP_BCRYPT_COST":    "10",
		"APP_VERSION":        "1.2.3",

		"DIARY_SESSION_TIMEOUT":  "30m",
		"DIARY_JANITOR_INTERVAL": "5m",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "/var/lib/diary.db",
		"STORAGE_FILES_DATA_DIR":  "/var/data",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 30*time.Minute, cfg.Diary.SessionTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Diary.JanitorInterval)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/diary.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/data", cfg.Storage.Files.DataDir)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":     "only_this",
		"DIARY_SESSION_TIMEOUT":  "15m",
		"STORAGE_FILES_DATA_DIR": "/data",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only_this", cfg.App.TokenSignKey)
	assert.Equal(t, 15*time.Minute, cfg.Diary.SessionTimeout)
	assert.Equal(t, "/data", cfg.Storage.Files.DataDir)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Diary.JanitorInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"DIARY_SESSION_TIMEOUT": "forever"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_BCRYPT_COST": "high"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnvFrom_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-process")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{
		"DIARY_JANITOR_INTERVAL": "1m",
		"STORAGE_DB_DRIVER":      "postgres",
	}))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Equal(t, time.Minute, cfg.Diary.JanitorInterval)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}
