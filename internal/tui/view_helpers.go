package tui

import (
	"fmt"
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────────────"

func viewTitle(title string) string {
	return titleStyle.Render(title) + "\n" + uiDivider + "\n"
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// shortAddress collapses a 0x-address to its usual 0xab..cdef display form.
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + ".." + addr[len(addr)-4:]
}

func formatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatSize(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func formatPnl(v float64) string {
	text := fmt.Sprintf("%+.2f", v)
	if v >= 0 {
		return profitStyle.Render(text)
	}
	return lossStyle.Render(text)
}

func formatFillTime(timeMs int64) string {
	if timeMs <= 0 {
		return "-"
	}
	return time.UnixMilli(timeMs).Local().Format("01-02 15:04:05")
}
