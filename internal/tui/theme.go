package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"brewstock/internal/store"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so every color is a lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Selection highlight used for modal buttons and the selected card border.
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	// Slightly elevated surface for controls/inputs so they remain visible
	// on light terminals.
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue

	// Card metadata (unit/category line inside cards).
	colorCardMetaFg lipgloss.TerminalColor = ac("238", "250")

	// Low-stock warning.
	colorLowFg lipgloss.TerminalColor = ac("160", "203") // red
)

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorLowFg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful
// for non-interactive CLI output but can accidentally disable colors in a
// TUI. Here we only honor NO_COLOR and otherwise follow the terminal.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which can cause
// AdaptiveColor to pick the wrong variant. Priority:
// 1) BREWSTOCK_TUI_THEME=light|dark|auto
// 2) config.json tui.theme
func applyThemePreference(cfg *store.GlobalConfig) {
	pick := strings.ToLower(strings.TrimSpace(os.Getenv("BREWSTOCK_TUI_THEME")))
	if pick == "" && cfg != nil && cfg.TUI != nil {
		pick = strings.ToLower(strings.TrimSpace(cfg.TUI.Theme))
	}
	switch pick {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
	// "auto"/empty: keep lipgloss's own detection.
}
