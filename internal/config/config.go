// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-hyper-monitor client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the outbound transport settings for the monitor API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background wallet poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// Session holds session lifecycle policy settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the monitor backend
	// (e.g. "http://localhost:8000"). A bare host:port is accepted and
	// normalized to http://.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client gives up (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that persists
// the session token and UI preferences across restarts.
type DB struct {
	// DSN is the SQLite file path, or ":memory:" for a non-persistent store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for the periodic wallet fetch loop.
type Workers struct {
	// PollInterval is the period between fetch cycles for the active wallet
	// (e.g. "15s").
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// FillsLimit bounds the number of recent fills requested per cycle.
	// The backend caps it at 200.
	// Env: WORKERS_FILLS_LIMIT
	FillsLimit int `env:"FILLS_LIMIT"`
}

// Session holds policy settings for the session state machine.
type Session struct {
	// KeepOnNetworkError keeps the current session when a profile refresh
	// fails for a reason other than HTTP 401/403. The default (false)
	// preserves the historical behavior of logging the user out on any
	// refresh failure, including transient network errors.
	// Env: SESSION_KEEP_ON_NETWORK_ERROR
	KeepOnNetworkError bool `env:"KEEP_ON_NETWORK_ERROR"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
