package tui

import (
	"testing"
	"time"

	"moviecli/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, apiURL string) appModel {
	t.Helper()
	return newAppModel(config.Config{
		APIURL:    apiURL,
		ConfigDir: t.TempDir(),
		Timeout:   time.Second,
	})
}

func newAppModelWithDir(t *testing.T, dir string) appModel {
	t.Helper()
	return newAppModel(config.Config{ConfigDir: dir, Timeout: time.Second})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// execCmds runs a command tree to completion and collects the produced
// messages, flattening batches. Only safe for commands that complete promptly
// (not flash timers).
func execCmds(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmds(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
