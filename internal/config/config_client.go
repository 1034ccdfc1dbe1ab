package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a setting is absent from every
// source. Poll interval and fills limit mirror the backend's own defaults.
const (
	DefaultHTTPAddress  = "http://localhost:8000"
	DefaultReqTimeout   = 15 * time.Second
	DefaultDatabaseDSN  = "hyper-monitor.db"
	DefaultPollInterval = 15 * time.Second
	DefaultFillsLimit   = 50
	MaxFillsLimit       = 200
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the monitor API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains settings for the background wallet poller.
type ClientWorkers struct {
	// PollInterval defines how often the active wallet is fetched.
	PollInterval time.Duration
	// FillsLimit bounds the recent fills requested per cycle.
	FillsLimit int
}

// ClientSession contains session lifecycle policy settings.
type ClientSession struct {
	// KeepOnNetworkError keeps the session on non-auth refresh failures.
	KeepOnNetworkError bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background poller settings.
	Workers ClientWorkers
	// Session contains session policy settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills in defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			FillsLimit:   cfg.Workers.FillsLimit,
		},
		Session: ClientSession{
			KeepOnNetworkError: cfg.Session.KeepOnNetworkError,
		},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultReqTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
	}
	if cfg.Workers.PollInterval <= 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
	if cfg.Workers.FillsLimit <= 0 {
		cfg.Workers.FillsLimit = DefaultFillsLimit
	}
	if cfg.Workers.FillsLimit > MaxFillsLimit {
		cfg.Workers.FillsLimit = MaxFillsLimit
	}
}
