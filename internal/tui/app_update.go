package tui

import (
	"errors"

	"moviecli/internal/api"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		return m, (&m).enterView(viewList)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case flashDoneMsg:
		// Only the newest flash's timer may hide it; dismissing an
		// already-hidden flash is a no-op.
		if msg.seq == m.flashSeq {
			m.flashVisible = false
		}
		return m, nil

	case moviesLoadedMsg:
		if msg.seq != m.listSeq {
			// A newer reload superseded this response; drop it.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("list load failed")
			return m, (&m).showFlash(flashError, errText(msg.err, "Failed to load movies"))
		}
		res := msg.result
		m.movies = res.Movies
		m.resultPage = res.Page
		if m.resultPage < 1 {
			m.resultPage = m.query.Page
		}
		m.totalPages = res.TotalPages
		if m.totalPages < 1 {
			m.totalPages = 1
		}
		m.totalFiltered = res.TotalFiltered
		if m.selected >= len(m.movies) {
			m.selected = len(m.movies) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("stats load failed")
			return m, (&m).showFlash(flashError, errText(msg.err, "Failed to load stats"))
		}
		m.stats = msg.result
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err == nil {
			txt := "Movie added."
			if msg.updated {
				txt = "Movie updated."
			}
			return m, tea.Batch((&m).showFlash(flashSuccess, txt), (&m).enterView(viewList))
		}
		var apiErr *api.Error
		if errors.As(msg.err, &apiErr) && apiErr.HasFieldErrors() {
			// Stay on the form with the entered values; only the named
			// fields get messages.
			(&m).applyFieldErrors(apiErr.Fields)
			return m, (&m).showFlash(flashError, "Please fix the form errors.")
		}
		log.Error().Err(msg.err).Msg("save failed")
		return m, (&m).showFlash(flashError, errText(msg.err, "Save failed."))

	case deleteDoneMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("delete failed")
			return m, (&m).showFlash(flashError, errText(msg.err, "Delete failed."))
		}
		// Step back a page before reloading when the deleted row was the
		// sole remainder on a page past the first, so the corrected page is
		// the one the reload requests.
		if pageRollbackAfterDelete(m.query.Page, m.query.PageSize, m.totalFiltered) {
			m.query.Page--
		}
		return m, tea.Batch((&m).showFlash(flashSuccess, "Movie deleted."), (&m).loadMovies())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirm modal owns the keyboard while open.
	if m.confirming {
		return m.updateConfirmKey(k)
	}

	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewForm:
		return m.updateFormKey(k)
	case viewStats:
		return m.updateStatsKey(k)
	default:
		return m.updateListKey(k)
	}
}

// errText prefers the server-provided message for API errors and falls back
// to a generic one for transport failures (whose Go error strings are not
// user-facing).
func errText(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
