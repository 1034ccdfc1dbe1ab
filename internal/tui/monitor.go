// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// monitorModel is the live wallet screen: an address input on top, the
// positions/balance summary in the middle, recent fills below.
type monitorModel struct {
	addressInput textinput.Model
	editing      bool

	target   string
	snapshot models.WalletSnapshot
	fillIdx  int

	spinner spinner.Model
	status  string
}

func newMonitorModel() monitorModel {
	addressInput := textinput.New()
	addressInput.Placeholder = "0x wallet address"
	addressInput.CharLimit = 42
	addressInput.Width = 46
	addressInput.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return monitorModel{addressInput: addressInput, editing: true, spinner: s}
}

func (m monitorModel) currentFill() (models.Fill, bool) {
	fills := m.snapshot.Fills
	if len(fills) == 0 || m.fillIdx < 0 || m.fillIdx >= len(fills) {
		return models.Fill{}, false
	}
	return fills[m.fillIdx], true
}

func (m monitorModel) View() string {
	header := titleStyle.Render("Hyper Monitor")
	if m.snapshot.Loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n" + uiDivider + "\n\n"

	if m.editing {
		out += "Wallet [" + m.addressInput.View() + "]\n\n"
	} else {
		out += "Wallet " + shortAddress(m.target) + "   (a change)\n\n"
	}

	out += m.viewSummary()
	out += m.viewFills()

	if m.snapshot.Error != "" {
		out += "\n" + errorStyle.Render(m.snapshot.Error)
		if m.snapshot.Summary != nil {
			out += staleStyle.Render("  (showing last known data)")
		}
		out += "\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("r refresh  c copy tx  w wallets  s settings  v subscription  ctrl+l logout  q quit")
	return out
}

func (m monitorModel) viewSummary() string {
	summary := m.snapshot.Summary
	if summary == nil {
		if m.target == "" {
			return "Enter a wallet address to start monitoring.\n"
		}
		if m.snapshot.Loading {
			return "Loading...\n"
		}
		return "No data yet.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Balance %s   Withdrawable %s   Positions value %s\n\n",
		formatUSD(summary.Balance), formatUSD(summary.Withdrawable), formatUSD(summary.TotalPositionValue))

	if len(summary.Positions) == 0 {
		b.WriteString("No open positions\n")
		return b.String()
	}

	b.WriteString("Coin     Side   Size         Entry      Mark       uPnL\n")
	for _, p := range summary.Positions {
		fmt.Fprintf(&b, "%-8s %-6s %-12s %-10.2f %-10.2f %s\n",
			fitText(p.Coin, 8), p.Side, formatSize(p.Size), p.EntryPrice, p.MarkPrice, formatPnl(p.UnrealizedPnl))
	}
	return b.String()
}

func (m monitorModel) viewFills() string {
	fills := m.snapshot.Fills
	if len(fills) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nRecent fills\n")
	for i, f := range fills {
		cursor := "  "
		if i == m.fillIdx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-15s %-8s %-5s %-12s @ %-10.2f %s\n",
			cursor, formatFillTime(f.TimeMs), fitText(f.Coin, 8), f.Side, formatSize(f.Size), f.Price, shortAddress(f.TxHash))
	}
	return b.String()
}
