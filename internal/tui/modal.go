package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func modalWidth(totalW int) int {
	w := totalW - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func modalBodyWidth(totalW int) int {
	return modalWidth(totalW) - 4 // border + padding
}

// renderModalBox draws a titled modal with a border. Content lines are
// wrapped/cut by the callers; this only frames them.
func renderModalBox(totalW int, title string, content string) string {
	w := modalWidth(totalW)
	bodyW := w - 4

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(bodyW + 2)

	return box.Render(header + "\n\n" + content)
}

// renderInputLine keeps a textinput's view on one visual line inside the
// modal; a newline or ANSI-induced overflow would wrap the box mid-keystroke.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	flat := strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+flat+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) <= bodyW {
		return line
	}
	// Hard cut at the body width; the reset keeps styling from bleeding out.
	return xansi.Cut(line, 0, bodyW) + "\x1b[0m"
}
