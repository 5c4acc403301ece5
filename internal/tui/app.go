package tui

import (
	"moviecli/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI against the configured API.
func Run(cfg config.Config) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
