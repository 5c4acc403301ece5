package tui

import (
	"context"
	"fmt"
	"strings"

	"moviecli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateConfirmKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		return m, (&m).confirmDelete()
	case "n", "esc", "ctrl+g", "ctrl+c":
		(&m).dismissConfirm()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m, (&m).confirmDelete()
		}
		(&m).dismissConfirm()
		return m, nil
	}
	return m, nil
}

// dismissConfirm closes the gate silently: no flash, no request.
func (m *appModel) dismissConfirm() {
	m.confirming = false
	m.deleteTarget = api.Movie{}
}

func (m *appModel) confirmDelete() tea.Cmd {
	id := m.deleteTarget.ID
	m.confirming = false
	m.deleteTarget = api.Movie{}
	client := m.client
	return func() tea.Msg {
		return deleteDoneMsg{err: client.Delete(context.Background(), id)}
	}
}

func (m appModel) renderDeleteConfirm() string {
	body := fmt.Sprintf("Delete %q? This cannot be undone.", m.deleteTarget.Title)
	box := renderConfirmModal(m.width, "Delete movie", body, "Delete", "Cancel", m.confirmFocus)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func renderConfirmModal(width int, title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	// No nested borders inside the box: some terminals show background
	// artifacts when bordered components carry a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	} else {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := width - 8
	if bodyW < 30 {
		bodyW = 30
	}
	if bodyW > 72 {
		bodyW = 72
	}
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   y/n   esc: cancel")

	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		help,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(content)
}
