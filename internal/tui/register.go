// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	codeSent   bool
	errMsg     string
	status     string
}

// Поля формы регистрации: email, пароль, повтор пароля, код из письма.
func newRegisterModel() registerModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password (min 6 chars)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	codeInput := textinput.New()
	codeInput.Placeholder = "verification code"
	codeInput.CharLimit = 6
	codeInput.Width = 40

	return registerModel{inputs: []textinput.Model{emailInput, passwordInput, repeatInput, codeInput}}
}

func (m registerModel) View() string {
	out := viewTitle("Create account") + "\n"
	out += "Email           [" + m.inputs[0].View() + "]\n"
	out += "Password        [" + m.inputs[1].View() + "]\n"
	out += "Repeat password [" + m.inputs[2].View() + "]\n"
	out += "Code            [" + m.inputs[3].View() + "]\n"

	if m.submitting {
		out += "\nWorking...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s send code to email  enter submit  tab next field  esc back")
	return out
}
