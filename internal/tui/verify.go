package tui

import (
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// verifyModel submits an on-chain payment transaction hash to activate the
// subscription.
type verifyModel struct {
	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
	user       *models.UserProfile
}

func newVerifyModel() verifyModel {
	input := textinput.New()
	input.Placeholder = "payment transaction hash"
	input.CharLimit = 66
	input.Width = 70
	input.Focus()

	return verifyModel{input: input}
}

func (m verifyModel) View() string {
	out := viewTitle("Subscription") + "\n"

	if m.user != nil {
		if m.user.SubscriptionActive {
			out += "Subscription active until " + m.user.SubscriptionEnd + "\n\n"
		} else if m.user.TrialActive {
			out += "Trial active until " + m.user.TrialEnd + "\n\n"
		} else {
			out += "No active subscription\n\n"
		}
	}

	out += "Tx hash [" + m.input.View() + "]\n"

	if m.submitting {
		out += "\nVerifying on-chain payment...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("enter verify  esc back")
	return out
}
