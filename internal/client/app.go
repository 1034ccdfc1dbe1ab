package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/internal/service"
	"github.com/MKhiriev/go-hyper-monitor/internal/tui"
	"github.com/MKhiriev/go-hyper-monitor/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run performs the startup bootstrap and hands control to the TUI.
// The stored token is exchanged for a profile before the first screen is
// drawn, so the user lands directly on the monitor when the session is
// still valid. Blocks until the user exits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.SettingsService.Health(ctx); err != nil {
		// недоступность сервера не фатальна: TUI покажет ошибку при логине
		a.logger.Warn().Err(err).Msg("backend health check failed")
	}

	session := a.services.SessionService.LoadSession(ctx)
	a.logSession(session)

	defer a.services.SyncService.Stop()

	if err := a.ui.Run(ctx, session); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}

func (a *App) logSession(session models.Session) {
	switch session.Status {
	case models.SessionAuthenticated:
		a.logger.Info().Str("email", session.User.Email).Msg("session restored")
	default:
		a.logger.Info().Msg("no stored session, starting anonymous")
	}
}
