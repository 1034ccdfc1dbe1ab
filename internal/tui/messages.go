package tui

import (
	"github.com/MKhiriev/go-hyper-monitor/models"
)

// snapshotUpdatedMsg is injected from outside the program loop whenever the
// sync service applies a new wallet snapshot.
type snapshotUpdatedMsg struct{}

type authResultMsg struct {
	session models.Session
	err     error
}

type codeRequestedMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type walletsLoadedMsg struct {
	list models.WalletList
	err  error
}

type settingsLoadedMsg struct {
	cfg   models.MonitorConfig
	wecom models.WecomConfig
	err   error
}

type settingsSavedMsg struct {
	cfg models.MonitorConfig
	err error
}

type verifyDoneMsg struct {
	session models.Session
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
