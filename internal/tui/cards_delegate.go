package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"brewstock/internal/inventory"
	"brewstock/internal/model"
)

type inventoryItem struct {
	item model.Item
}

func (i inventoryItem) FilterValue() string {
	return strings.TrimSpace(i.item.Name)
}

type cardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style

	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
	lowStyle   lipgloss.Style
}

func newCardDelegate() cardDelegate {
	base := lipgloss.NewStyle().
		Width(0). // Set per-render.
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Foreground(colorSurfaceFg)

	selected := base.BorderForeground(colorAccent)

	return cardDelegate{
		normalCard:   base,
		selectedCard: selected,
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
		lowStyle:     lipgloss.NewStyle().Foreground(colorLowFg),
	}
}

func (d cardDelegate) Height() int  { return 5 } // 3 inner lines + border top/bottom
func (d cardDelegate) Spacing() int { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		fmt.Fprint(w, "")
		return
	}

	inv, ok := item.(inventoryItem)
	if !ok {
		fmt.Fprint(w, "")
		return
	}
	it := inv.item

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	frameW := card.GetHorizontalFrameSize()
	innerW := totalW - frameW
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	title := strings.TrimSpace(it.Name)
	if title == "" {
		title = "(unnamed item)"
	}

	stock := inventory.FormatStock(it.Stock)
	meta := strings.TrimSpace(it.Unit)
	if c := strings.TrimSpace(it.Category); c != "" {
		if meta != "" {
			meta += " " + glyphBullet() + " "
		}
		meta += c
	}

	stockLine := stock
	if meta != "" {
		stockLine += "  " + d.metaStyle.Render(meta)
	}

	third := ""
	if it.Low() {
		third = d.lowStyle.Render(glyphLowStock() + " Low stock")
	} else {
		third = styleMuted().Render("1/2/3: use 1 / 0.5 / 0.1")
	}

	lines := []string{
		cutLine(d.titleStyle.Render(title), innerW),
		cutLine(stockLine, innerW),
		cutLine(third, innerW),
	}

	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

func cutLine(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Cut(s, 0, w) + "\x1b[0m"
}
