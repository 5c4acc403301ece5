package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) loadStats() tea.Cmd {
	client := m.client
	pageSize := m.query.PageSize
	return func() tea.Msg {
		res, err := client.GetStats(context.Background(), pageSize)
		return statsLoadedMsg{result: res, err: err}
	}
}

func (m appModel) updateStatsKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m, (&m).loadStats()
	case "1":
		return m, (&m).enterView(viewList)
	case "2":
		return m, (&m).enterView(viewForm)
	}
	return m, nil
}
