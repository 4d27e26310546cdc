package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Buttons are backgrounds only. Nesting bordered components inside the
	// modal box produces artifacts on some terminals.
	idle := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	focused := idle.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	button := func(label string, hasFocus bool) string {
		if hasFocus {
			return focused.Render(label)
		}
		return idle.Render(label)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		button(confirmLabel, focus == confirmFocusConfirm),
		lipgloss.NewStyle().Background(colorControlBg).Render(" "),
		button(cancelLabel, focus == confirmFocusCancel),
	)

	help := styleMuted().Width(modalBodyWidth(width)).
		Render("tab: focus   enter: select   esc/ctrl+g: cancel")

	return renderModalBox(width, title,
		strings.Join([]string{body, "", controls, "", help}, "\n"))
}
