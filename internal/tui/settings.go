// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// settingsModel edits the server-held notification configuration plus the
// locally persisted UI language.
type settingsModel struct {
	inputs  []textinput.Model
	focus   int
	loading bool
	saving  bool

	language       string
	usesDefaultBot bool
	defaultBot     string
	wecomEnabled   bool

	status string
	errMsg string
}

const (
	settingsFieldBotToken = iota
	settingsFieldChatID
	settingsFieldWallets
	settingsFieldWecomURL
)

func newSettingsModel() settingsModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "telegram bot token (empty = shared bot)"
	tokenInput.CharLimit = 128
	tokenInput.Width = 50
	tokenInput.Focus()

	chatInput := textinput.New()
	chatInput.Placeholder = "telegram chat id"
	chatInput.CharLimit = 32
	chatInput.Width = 50

	walletsInput := textinput.New()
	walletsInput.Placeholder = "wallet addresses, comma separated"
	walletsInput.CharLimit = 1024
	walletsInput.Width = 50

	wecomInput := textinput.New()
	wecomInput.Placeholder = "wecom webhook url"
	wecomInput.CharLimit = 512
	wecomInput.Width = 50

	return settingsModel{
		inputs:   []textinput.Model{tokenInput, chatInput, walletsInput, wecomInput},
		loading:  true,
		language: "zh",
	}
}

func (m *settingsModel) apply(cfg models.MonitorConfig, wecom models.WecomConfig) {
	m.inputs[settingsFieldBotToken].SetValue(cfg.TelegramBotToken)
	m.inputs[settingsFieldChatID].SetValue(cfg.TelegramChatID)
	m.inputs[settingsFieldWallets].SetValue(strings.Join(cfg.WalletAddresses, ","))
	m.inputs[settingsFieldWecomURL].SetValue(wecom.WebhookURL)
	if cfg.Language != "" {
		m.language = cfg.Language
	}
	m.usesDefaultBot = cfg.UsesDefaultBot
	m.defaultBot = cfg.DefaultBotUsername
	m.wecomEnabled = wecom.Enabled
}

func (m settingsModel) monitorConfig() models.MonitorConfig {
	var addresses []string
	for _, raw := range strings.Split(m.inputs[settingsFieldWallets].Value(), ",") {
		if addr := strings.TrimSpace(raw); addr != "" {
			addresses = append(addresses, addr)
		}
	}

	return models.MonitorConfig{
		TelegramBotToken: strings.TrimSpace(m.inputs[settingsFieldBotToken].Value()),
		TelegramChatID:   strings.TrimSpace(m.inputs[settingsFieldChatID].Value()),
		WalletAddresses:  addresses,
		Language:         m.language,
	}
}

func (m settingsModel) wecomConfig() models.WecomConfig {
	url := strings.TrimSpace(m.inputs[settingsFieldWecomURL].Value())
	return models.WecomConfig{Enabled: url != "", WebhookURL: url}
}

func (m settingsModel) View() string {
	out := viewTitle("Settings") + "\n"

	if m.loading {
		out += "Loading...\n"
		out += "\n" + helpStyle.Render("esc back")
		return out
	}

	out += "Bot token  [" + m.inputs[settingsFieldBotToken].View() + "]\n"
	if m.usesDefaultBot && m.defaultBot != "" {
		out += helpStyle.Render("           using shared bot @"+m.defaultBot) + "\n"
	}
	out += "Chat id    [" + m.inputs[settingsFieldChatID].View() + "]\n"
	out += "Wallets    [" + m.inputs[settingsFieldWallets].View() + "]\n"
	out += "WeCom url  [" + m.inputs[settingsFieldWecomURL].View() + "]\n"
	out += "Language    " + m.language + "  (g toggle)\n"

	if m.saving {
		out += "\nSaving...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s save  tab next field  esc back")
	return out
}
