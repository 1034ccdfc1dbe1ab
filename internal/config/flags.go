package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL, e.g. http://localhost:8000
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-d local database path (SQLite file or ":memory:")
//	-poll-interval wallet fetch period (e.g., "15s")
//	-fills-limit recent fills per fetch cycle
//	-keep-on-network-error keep the session when a profile refresh fails without 401/403
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var pollInterval time.Duration
	var fillsLimit int
	var keepOnNetworkError bool
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Monitor API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Wallet poll interval (e.g., 15s)")
	flag.IntVar(&fillsLimit, "fills-limit", 0, "Recent fills per fetch cycle")
	flag.BoolVar(&keepOnNetworkError, "keep-on-network-error", false, "Keep session on non-auth refresh failures")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			PollInterval: pollInterval,
			FillsLimit:   fillsLimit,
		},
		Session: Session{
			KeepOnNetworkError: keepOnNetworkError,
		},
		JSONFilePath: jsonConfigPath,
	}
}
