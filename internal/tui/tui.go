package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/internal/service"
	"github.com/MKhiriev/go-hyper-monitor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the whole interactive session: authentication screens when the
// bootstrap session is anonymous, then the monitor screens. The sync service
// pushes snapshot updates into the program loop via Send, so the view redraws
// on every applied poll cycle without user input.
//
// Returns [ErrUserQuit] when the user exits deliberately.
func (t *TUI) Run(ctx context.Context, session models.Session) error {
	model := newAppModel(ctx, t.services, session)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.services.SyncService.SetOnUpdate(func() {
		program.Send(snapshotUpdatedMsg{})
	})
	defer t.services.SyncService.SetOnUpdate(nil)

	finalModel, runErr := program.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return ErrUserQuit
	}
	return result.err
}
