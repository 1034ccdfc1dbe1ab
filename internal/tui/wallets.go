package tui

type walletsModel struct {
	items   []string
	idx     int
	loading bool
}

func newWalletsModel() walletsModel {
	return walletsModel{loading: true}
}

func (m walletsModel) current() (string, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return "", false
	}
	return m.items[m.idx], true
}

func (m walletsModel) View() string {
	out := viewTitle("Known wallets") + "\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No wallets configured on the server\n"
	} else {
		for i, addr := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + addr + "\n"
		}
	}

	out += "\n" + helpStyle.Render("enter monitor  esc back")
	return out
}
