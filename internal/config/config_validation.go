// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final [ClientConfig] satisfies all application
// invariants before it is used at startup. Defaults have already been applied
// at this point, so a violation means an explicitly invalid value was
// supplied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.FillsLimit <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
