package tui

import (
	"context"
	"strconv"
	"strings"

	"moviecli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// beginAdd puts the form in add mode: no bound record, blank fields, blank
// errors, and the form view active.
func (m *appModel) beginAdd() {
	m.editingID = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.fieldErrs[i] = ""
	}
	m.setFormFocus(fieldTitle)
	_ = m.enterView(viewForm)
}

// beginEdit binds the form to the record and copies each field verbatim
// (numbers coerced to display strings, a missing image URL becomes empty).
func (m *appModel) beginEdit(mv api.Movie) {
	m.editingID = mv.ID
	m.inputs[fieldTitle].SetValue(mv.Title)
	m.inputs[fieldDirector].SetValue(mv.Director)
	m.inputs[fieldYear].SetValue(strconv.Itoa(mv.Year))
	m.inputs[fieldRating].SetValue(strconv.FormatFloat(mv.Rating, 'f', -1, 64))
	m.inputs[fieldImageURL].SetValue(mv.ImageURL)
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}
	m.setFormFocus(fieldTitle)
	_ = m.enterView(viewForm)
}

// clearForm blanks values and errors but keeps the edit binding. cancelForm
// additionally returns the form to add mode.
func (m *appModel) clearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.fieldErrs[i] = ""
	}
	m.setFormFocus(fieldTitle)
}

func (m *appModel) cancelForm() {
	m.beginAdd()
}

// submitForm clears prior field errors, trims the entered text, and
// dispatches a create (add mode) or an update (edit mode).
func (m *appModel) submitForm() tea.Cmd {
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}

	p := api.MoviePayload{
		Title:    strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Director: strings.TrimSpace(m.inputs[fieldDirector].Value()),
		Year:     strings.TrimSpace(m.inputs[fieldYear].Value()),
		Rating:   strings.TrimSpace(m.inputs[fieldRating].Value()),
		ImageURL: strings.TrimSpace(m.inputs[fieldImageURL].Value()),
	}

	m.saving = true
	client := m.client
	id := m.editingID
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			var err error
			if id == 0 {
				_, err = client.Create(context.Background(), p)
			} else {
				_, err = client.Update(context.Background(), id, p)
			}
			return saveDoneMsg{updated: id != 0, err: err}
		},
	)
}

// applyFieldErrors writes each named field's message into its error slot;
// fields the server didn't name keep their (cleared) slot.
func (m *appModel) applyFieldErrors(errs map[string]string) {
	for i, key := range fieldKeys {
		if msg, ok := errs[key]; ok {
			m.fieldErrs[i] = msg
		}
	}
}

func (m *appModel) setFormFocus(i int) tea.Cmd {
	m.formFocus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m appModel) updateFormKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "enter":
		if m.saving {
			return m, nil
		}
		return m, (&m).submitForm()
	case "tab", "down":
		return m, (&m).setFormFocus((m.formFocus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, (&m).setFormFocus((m.formFocus + fieldCount - 1) % fieldCount)
	case "ctrl+u":
		(&m).clearForm()
		return m, nil
	case "ctrl+g":
		(&m).cancelForm()
		return m, nil
	case "esc":
		return m, (&m).enterView(viewList)
	}

	var cmd tea.Cmd
	m.inputs[m.formFocus], cmd = m.inputs[m.formFocus].Update(k)
	return m, cmd
}
