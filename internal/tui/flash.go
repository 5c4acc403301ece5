package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	flashInfo    = "info"
	flashSuccess = "success"
	flashError   = "error"
)

// Auto-dismiss interval for flash messages, regardless of severity.
const flashDuration = 3500 * time.Millisecond

// showFlash overwrites the single notification slot and restarts the
// dismissal timer. Bumping the seq invalidates any timer already in flight,
// so back-to-back flashes each get their full display time.
func (m *appModel) showFlash(kind, text string) tea.Cmd {
	m.flashText = text
	m.flashKind = kind
	m.flashVisible = true
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}
