package service

import (
	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/config"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/internal/store"
)

// ClientServices bundles the client-side services for injection into the TUI.
type ClientServices struct {
	SessionService  ClientSessionService
	SyncService     WalletSyncService
	SettingsService SettingsService
}

// NewClientServices wires the services against the local store and the
// server adapter using the resolved client configuration.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:  NewClientSessionService(storages.SessionRepository, serverAdapter, cfg.Session.KeepOnNetworkError, log.GetChildLogger()),
		SyncService:     NewWalletSyncService(serverAdapter, cfg.Workers.PollInterval, cfg.Workers.FillsLimit, log.GetChildLogger()),
		SettingsService: NewSettingsService(serverAdapter, storages.SessionRepository),
	}
}
