package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"brewstock/internal/inventory"
	"brewstock/internal/model"
)

// Edit dialog field order matches the rendered form top to bottom.
const (
	fieldName = iota
	fieldCategory
	fieldStock
	fieldUnit
	fieldLowAlert
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Category",
	"Stock",
	"Unit",
	"Low-stock alert",
}

// editModal is the add/edit dialog. editingID == 0 means create mode;
// otherwise a full-record replace of that id.
type editModal struct {
	editingID int64
	inputs    [fieldCount]textinput.Model
	focus     int
	errText   string
	saving    bool
}

type editAction int

const (
	editActionNone editAction = iota
	editActionSave
	editActionCancel
	editActionDelete
)

func newEditModal() editModal {
	var m editModal
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.inputs[fieldStock].Placeholder = "0"
	m.inputs[fieldLowAlert].Placeholder = "0"
	return m
}

// openForCreate clears all fields; the delete affordance stays hidden.
func (m *editModal) openForCreate() {
	m.editingID = 0
	m.errText = ""
	m.saving = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.setFocus(fieldName)
}

// openForEdit populates fields from the item's current values and shows
// the delete affordance.
func (m *editModal) openForEdit(it model.Item) {
	m.editingID = it.ID
	m.errText = ""
	m.saving = false
	f := inventory.FormFromItem(it)
	m.inputs[fieldName].SetValue(f.Name)
	m.inputs[fieldCategory].SetValue(f.Category)
	m.inputs[fieldStock].SetValue(f.Stock)
	m.inputs[fieldUnit].SetValue(f.Unit)
	m.inputs[fieldLowAlert].SetValue(f.LowAlert)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.setFocus(fieldName)
}

func (m *editModal) setFocus(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m editModal) form() inventory.ItemForm {
	return inventory.ItemForm{
		Name:     m.inputs[fieldName].Value(),
		Category: m.inputs[fieldCategory].Value(),
		Stock:    m.inputs[fieldStock].Value(),
		Unit:     m.inputs[fieldUnit].Value(),
		LowAlert: m.inputs[fieldLowAlert].Value(),
	}
}

func (m editModal) title() string {
	if m.editingID != 0 {
		return "Edit item"
	}
	return "Add item"
}

// update interprets one key. Mutating decisions (save/cancel/delete) are
// returned as actions for the app model to carry out.
func (m editModal) update(msg tea.KeyMsg) (editModal, editAction, tea.Cmd) {
	if m.saving {
		// A write is in flight; ignore keys until it completes.
		return m, editActionNone, nil
	}
	switch msg.String() {
	case "esc", "ctrl+g":
		return m, editActionCancel, nil
	case "ctrl+s":
		return m, editActionSave, nil
	case "ctrl+d":
		if m.editingID != 0 {
			return m, editActionDelete, nil
		}
		return m, editActionNone, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, editActionNone, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, editActionNone, nil
	case "enter":
		if m.focus == fieldCount-1 {
			return m, editActionSave, nil
		}
		m.setFocus(m.focus + 1)
		return m, editActionNone, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, editActionNone, cmd
}

func (m editModal) view(width int) string {
	bodyW := modalBodyWidth(width)

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(styleMuted().Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(renderInputLine(bodyW, m.inputs[i].View()))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle().Width(bodyW).Render(m.errText))
		b.WriteString("\n")
	}

	help := "tab: next field   enter/ctrl+s: save   esc/ctrl+g: cancel"
	if m.editingID != 0 {
		help += "   ctrl+d: delete"
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Width(bodyW).Render(help))

	return renderModalBox(width, m.title(), b.String())
}
