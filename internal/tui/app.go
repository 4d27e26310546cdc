package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brewstock/internal/inventory"
	"brewstock/internal/model"
	"brewstock/internal/store"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalEdit
	modalConfirmDelete
	modalHelp
)

type itemsLoadedMsg struct {
	items []model.Item
	err   error
}

type saveDoneMsg struct{ err error }
type deleteDoneMsg struct{ err error }
type adjustDoneMsg struct{ err error }
type snapshotDoneMsg struct{}

type appModel struct {
	store store.Store

	width  int
	height int

	itemsList list.Model

	modal        modalKind
	edit         editModal
	confirmFocus confirmModalFocus

	status string
}

func newAppModel(s store.Store) appModel {
	m := appModel{
		store: s,
		edit:  newEditModal(),
	}
	l := list.New([]list.Item{}, newCardDelegate(), 0, 0)
	l.Title = "Inventory"
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	// Bubble list defaults to quitting on ESC; here ESC is "cancel/back".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	m.itemsList = l
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadItemsCmd(), m.writeSnapshotCmd())
}

// loadItemsCmd reads the full list and re-sorts it; the view is always a
// fresh snapshot of store state, never an in-place mutation.
func (m appModel) loadItemsCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		db, err := s.Open(ctx)
		if err != nil {
			return itemsLoadedMsg{err: err}
		}
		defer db.Close()
		items, err := db.ListAll(ctx)
		if err != nil {
			return itemsLoadedMsg{err: err}
		}
		inventory.SortByName(items)
		return itemsLoadedMsg{items: items}
	}
}

func (m appModel) writeSnapshotCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		// Advisory; the app never reads the snapshot back.
		_ = s.WriteSnapshot(context.Background())
		return snapshotDoneMsg{}
	}
}

func (m appModel) saveCmd(it model.Item) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		db, err := s.Open(ctx)
		if err != nil {
			return saveDoneMsg{err: err}
		}
		defer db.Close()
		if it.ID != 0 {
			return saveDoneMsg{err: db.Put(ctx, it)}
		}
		_, err = db.Insert(ctx, it)
		return saveDoneMsg{err: err}
	}
}

func (m appModel) deleteCmd(id int64) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		db, err := s.Open(ctx)
		if err != nil {
			return deleteDoneMsg{err: err}
		}
		defer db.Close()
		return deleteDoneMsg{err: db.DeleteByID(ctx, id)}
	}
}

func (m appModel) adjustCmd(id int64, delta float64) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		db, err := s.Open(ctx)
		if err != nil {
			return adjustDoneMsg{err: err}
		}
		defer db.Close()
		err = db.AdjustStock(ctx, id, delta)
		if errors.Is(err, store.ErrNotFound) {
			// Racing a delete: the adjustment is a silent no-op.
			err = nil
		}
		return adjustDoneMsg{err: err}
	}
}

func (m appModel) selectedItem() (model.Item, bool) {
	it, ok := m.itemsList.SelectedItem().(inventoryItem)
	if !ok {
		return model.Item{}, false
	}
	return it.item, true
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeList()
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.setItems(msg.items)
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			// Keep the dialog open so nothing typed is lost.
			m.edit.saving = false
			m.edit.errText = msg.err.Error()
			return m, nil
		}
		m.modal = modalNone
		return m, m.loadItemsCmd()

	case deleteDoneMsg:
		m.modal = modalNone
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, m.loadItemsCmd()

	case adjustDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, m.loadItemsCmd()

	case snapshotDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, modals and filtering included.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.modal {
	case modalEdit:
		return m.updateEditModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmModal(msg)
	case modalHelp:
		switch msg.String() {
		case "esc", "ctrl+g", "?", "q":
			m.modal = modalNone
		}
		return m, nil
	}

	// Let the list's filter input capture keys while filtering.
	if m.itemsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.itemsList, cmd = m.itemsList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m, m.loadItemsCmd()
	case "?":
		m.modal = modalHelp
		return m, nil
	case "a":
		m.edit.openForCreate()
		m.modal = modalEdit
		m.status = ""
		return m, nil
	case "enter", "e":
		if it, ok := m.selectedItem(); ok {
			m.edit.openForEdit(it)
			m.modal = modalEdit
			m.status = ""
		}
		return m, nil
	case "1", "2", "3":
		if it, ok := m.selectedItem(); ok {
			amt := inventory.UseAmounts[int(msg.String()[0]-'1')]
			return m, m.adjustCmd(it.ID, -amt)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

func (m appModel) updateEditModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edit, action, cmd := m.edit.update(msg)
	m.edit = edit

	switch action {
	case editActionCancel:
		m.modal = modalNone
		return m, nil
	case editActionSave:
		it, err := inventory.ParseForm(m.edit.form())
		if err != nil {
			m.edit.errText = err.Error()
			return m, nil
		}
		it.ID = m.edit.editingID
		m.edit.saving = true
		m.edit.errText = ""
		return m, m.saveCmd(it)
	case editActionDelete:
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDelete
		return m, nil
	}
	return m, cmd
}

func (m appModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Declined: back to the edit dialog, edits intact.
		m.modal = modalEdit
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm && m.edit.editingID != 0 {
			return m, m.deleteCmd(m.edit.editingID)
		}
		m.modal = modalEdit
		return m, nil
	}
	return m, nil
}

func (m *appModel) setItems(items []model.Item) {
	selectedID := int64(0)
	if it, ok := m.selectedItem(); ok {
		selectedID = it.ID
	}

	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, inventoryItem{item: it})
	}
	m.itemsList.SetItems(rows)

	// Keep the selection on the same record across reloads when possible.
	if selectedID != 0 {
		for i, it := range items {
			if it.ID == selectedID {
				m.itemsList.Select(i)
				break
			}
		}
	}
}

func (m *appModel) resizeList() {
	h := m.height - 4 // header + footer
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.itemsList.SetSize(w, h)
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Brewstock  " + styleMuted().Render(m.store.Dir))

	var body string
	switch m.modal {
	case modalEdit:
		body = m.placeCentered(m.edit.view(m.width))
	case modalConfirmDelete:
		name := ""
		if m.edit.editingID != 0 {
			name = strings.TrimSpace(m.edit.form().Name)
		}
		bodyText := fmt.Sprintf("Delete %q permanently?", name)
		body = m.placeCentered(renderConfirmModal(m.width, "Delete item", bodyText, "Delete", "Cancel", m.confirmFocus))
	case modalHelp:
		body = m.placeCentered(renderHelpModal(m.width))
	default:
		body = m.itemsList.View()
	}

	footer := styleMuted().Render("1/2/3: use 1/0.5/0.1   a: add   enter: edit   r: reload   ?: help   q: quit")
	if m.status != "" {
		footer = errorStyle().Render(m.status)
	}

	return strings.Join([]string{header, body, footer}, "\n")
}

func (m appModel) placeCentered(s string) string {
	h := m.height - 4
	if h < lipgloss.Height(s) {
		h = lipgloss.Height(s)
	}
	w := m.width
	if w < lipgloss.Width(s) {
		w = lipgloss.Width(s)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s)
}
