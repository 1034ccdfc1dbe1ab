// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-hyper-monitor/internal/service"
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMonitor
	screenWallets
	screenSettings
	screenVerify
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen
	session       models.Session

	welcome  welcomeModel
	login    loginModel
	register registerModel
	monitor  monitorModel
	wallets  walletsModel
	settings settingsModel
	verify   verifyModel

	showError    bool
	errorOverlay errorOverlayModel

	err    error
	logout bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, session models.Session) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		session:  session,
		welcome:  newWelcomeModel(),
		login:    newLoginModel(),
		register: newRegisterModel(),
		monitor:  newMonitorModel(),
		wallets:  newWalletsModel(),
		settings: newSettingsModel(),
		verify:   newVerifyModel(),
	}

	if session.Status == models.SessionAuthenticated {
		m.currentScreen = screenMonitor
	} else {
		m.currentScreen = screenWelcome
	}
	m.verify.user = session.User

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case authResultMsg:
		return m.onAuthResult(msg)
	case codeRequestedMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.register.codeSent = true
		m.register.status = "Verification code sent, check your mailbox"
		return m, nil
	case snapshotUpdatedMsg:
		m.monitor.snapshot = m.services.SyncService.Snapshot()
		m.monitor.target = m.services.SyncService.ActiveTarget()
		if m.monitor.fillIdx >= len(m.monitor.snapshot.Fills) {
			m.monitor.fillIdx = len(m.monitor.snapshot.Fills) - 1
		}
		if m.monitor.fillIdx < 0 {
			m.monitor.fillIdx = 0
		}
		if m.monitor.snapshot.Loading {
			return m, m.monitor.spinner.Tick
		}
		return m, nil
	case walletsLoadedMsg:
		m.wallets.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.wallets.items = msg.list.Wallets
		if m.wallets.idx >= len(m.wallets.items) {
			m.wallets.idx = 0
		}
		return m, nil
	case settingsLoadedMsg:
		m.settings.loading = false
		if msg.err != nil {
			m.settings.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.settings.errMsg = ""
		m.settings.apply(msg.cfg, msg.wecom)
		return m, nil
	case settingsSavedMsg:
		m.settings.saving = false
		if msg.err != nil {
			m.settings.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.settings.errMsg = ""
		m.settings.status = "Saved"
		m.settings.usesDefaultBot = msg.cfg.UsesDefaultBot
		m.settings.defaultBot = msg.cfg.DefaultBotUsername
		return m, cmdClearStatus()
	case verifyDoneMsg:
		m.verify.submitting = false
		if msg.err != nil {
			m.verify.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.session = msg.session
		m.verify.user = msg.session.User
		m.verify.errMsg = ""
		m.verify.status = "Payment verified, subscription active"
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
		}
		m.session = models.Session{Status: models.SessionAnonymous}
		m.verify.user = nil
		m.currentScreen = screenWelcome
		return m, nil
	case copiedMsg:
		m.monitor.status = "Tx hash copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.monitor.status = ""
		m.settings.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.monitor.snapshot.Loading {
			var cmd tea.Cmd
			m.monitor.spinner, cmd = m.monitor.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMonitor:
		return m.updateMonitor(msg)
	case screenWallets:
		return m.updateWallets(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenVerify:
		return m.updateVerify(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenMonitor:
		body = m.monitor.View()
	case screenWallets:
		body = m.wallets.View()
	case screenSettings:
		body = m.settings.View()
	case screenVerify:
		body = m.verify.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) onAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	m.register.submitting = false

	if msg.err != nil {
		errText := humanizeServerUnavailableError(msg.err)
		if msg.session.LastError != "" {
			errText = msg.session.LastError
		}
		m.login.errMsg = errText
		m.register.errMsg = errText
		return m, nil
	}

	m.session = msg.session
	m.verify.user = msg.session.User
	m.login.errMsg = ""
	m.register.errMsg = ""
	m.currentScreen = screenMonitor
	return m, nil
}

// ── Per-screen key handling ──────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusNextRegister(m.register, -1)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			// отправка кода на почту до сабмита формы
			email := strings.TrimSpace(m.register.inputs[0].Value())
			if email == "" {
				m.register.errMsg = "Enter an email first"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRequestCode(email)
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			code := strings.TrimSpace(m.register.inputs[3].Value())
			if email == "" || pass == "" || code == "" {
				m.register.errMsg = "Email, password and code are required"
				return m, nil
			}
			if len(pass) < 6 {
				m.register.errMsg = "Password must be at least 6 characters"
				return m, nil
			}
			if pass != repeat {
				m.register.errMsg = "Passwords do not match"
				return m, nil
			}
			m.register.errMsg = ""
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{Email: email, Password: pass, VerificationCode: code})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMonitor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.monitor.editing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.monitor.target != "" {
				m.monitor.editing = false
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			// адрес не валидируем: бэкенд сам ответит 404 на неизвестный кошелёк
			address := strings.TrimSpace(m.monitor.addressInput.Value())
			if address == "" {
				return m, nil
			}
			m.monitor.status = ""
			m.monitor.editing = false
			m.monitor.fillIdx = 0
			m.services.SyncService.SetSelected(m.ctx, address)
			m.monitor.target = address
			m.monitor.snapshot = m.services.SyncService.Snapshot()
			return m, m.monitor.spinner.Tick
		}

		var cmd tea.Cmd
		m.monitor.addressInput, cmd = m.monitor.addressInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.services.SyncService.SetSelected(m.ctx, "")
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.refresh):
		m.services.SyncService.Refresh(m.ctx)
		return m, m.monitor.spinner.Tick
	case key.Matches(keyMsg, keys.up):
		if m.monitor.fillIdx > 0 {
			m.monitor.fillIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.monitor.fillIdx < len(m.monitor.snapshot.Fills)-1 {
			m.monitor.fillIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		fill, ok := m.monitor.currentFill()
		if !ok || fill.TxHash == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(fill.TxHash)
	case key.Matches(keyMsg, keys.wallets):
		m.wallets.loading = true
		m.currentScreen = screenWallets
		return m, m.cmdLoadWallets()
	case key.Matches(keyMsg, keys.settings):
		m.settings = newSettingsModel()
		m.currentScreen = screenSettings
		return m, m.cmdLoadSettings()
	case key.Matches(keyMsg, keys.verify):
		m.currentScreen = screenVerify
		return m, nil
	case keyMsg.String() == "a":
		m.monitor.editing = true
		m.monitor.addressInput.SetValue(m.monitor.target)
		m.monitor.addressInput.Focus()
		return m, nil
	}

	return m, nil
}

func (m appModel) updateWallets(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMonitor
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.wallets.idx > 0 {
			m.wallets.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.wallets.idx < len(m.wallets.items)-1 {
			m.wallets.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		address, ok := m.wallets.current()
		if !ok {
			return m, nil
		}
		m.monitor.editing = false
		m.monitor.fillIdx = 0
		m.monitor.addressInput.SetValue(address)
		m.services.SyncService.SetSelected(m.ctx, address)
		m.monitor.target = address
		m.monitor.snapshot = m.services.SyncService.Snapshot()
		m.currentScreen = screenMonitor
		return m, m.monitor.spinner.Tick
	}

	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMonitor
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.settings = focusNextSettings(m.settings, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settings = focusNextSettings(m.settings, -1)
			return m, nil
		case key.Matches(keyMsg, keys.language):
			if m.settings.language == "zh" {
				m.settings.language = "en"
			} else {
				m.settings.language = "zh"
			}
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.settings.saving || m.settings.loading {
				return m, nil
			}
			m.settings.saving = true
			m.settings.status = ""
			return m, m.cmdSaveSettings(m.settings.monitorConfig(), m.settings.wecomConfig())
		}
	}

	var cmd tea.Cmd
	m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateVerify(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMonitor
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.verify.submitting {
				return m, nil
			}
			txHash := strings.TrimSpace(m.verify.input.Value())
			if txHash == "" {
				m.verify.errMsg = "Transaction hash is required"
				return m, nil
			}
			m.verify.errMsg = ""
			m.verify.submitting = true
			return m, m.cmdVerifySubscription(txHash)
		}
	}

	var cmd tea.Cmd
	m.verify.input, cmd = m.verify.input.Update(msg)
	return m, cmd
}

// ── Async commands ───────────────────────────────────────────────────────────

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		session, err := sessions.Login(ctx, creds)
		return authResultMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		session, err := sessions.Register(ctx, req)
		return authResultMsg{session: session, err: err}
	}
}

func (m appModel) cmdRequestCode(email string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return codeRequestedMsg{err: sessions.RequestVerificationCode(ctx, email)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return logoutDoneMsg{err: sessions.Logout(ctx)}
	}
}

func (m appModel) cmdLoadWallets() tea.Cmd {
	ctx := m.ctx
	settings := m.services.SettingsService
	return func() tea.Msg {
		list, err := settings.Wallets(ctx)
		return walletsLoadedMsg{list: list, err: err}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	settings := m.services.SettingsService
	return func() tea.Msg {
		cfg, err := settings.MonitorConfig(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		wecom, err := settings.WecomConfig(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		return settingsLoadedMsg{cfg: cfg, wecom: wecom}
	}
}

func (m appModel) cmdSaveSettings(cfg models.MonitorConfig, wecom models.WecomConfig) tea.Cmd {
	ctx := m.ctx
	settings := m.services.SettingsService
	return func() tea.Msg {
		saved, err := settings.SaveMonitorConfig(ctx, cfg)
		if err != nil {
			return settingsSavedMsg{err: err}
		}
		if _, err := settings.SaveWecomConfig(ctx, wecom); err != nil {
			return settingsSavedMsg{err: err}
		}
		// языковой выбор дублируется в локальном хранилище
		if err := settings.SaveLanguage(ctx, cfg.Language); err != nil {
			return settingsSavedMsg{err: err}
		}
		return settingsSavedMsg{cfg: saved}
	}
}

func (m appModel) cmdVerifySubscription(txHash string) tea.Cmd {
	ctx := m.ctx
	settings := m.services.SettingsService
	sessions := m.services.SessionService
	return func() tea.Msg {
		if _, err := settings.VerifySubscription(ctx, txHash); err != nil {
			return verifyDoneMsg{err: err}
		}
		return verifyDoneMsg{session: sessions.RefreshUser(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel, dir int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel, dir int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextSettings(m settingsModel, dir int) settingsModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
