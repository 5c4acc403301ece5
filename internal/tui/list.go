package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moviecli/internal/api"
	"moviecli/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// loadMovies issues a reload for the current query. Each reload bumps the
// sequence token; a response carrying an older token is discarded in Update.
func (m *appModel) loadMovies() tea.Cmd {
	m.loading = true
	m.listSeq++
	seq := m.listSeq
	q := m.query
	client := m.client
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			res, err := client.List(context.Background(), q)
			return moviesLoadedMsg{seq: seq, result: res, err: err}
		},
	)
}

// applyFilters stores the new filter state and reloads from the first page:
// a changed filter invalidates the meaning of the previous page index.
func (m *appModel) applyFilters(q, sort, dir string) tea.Cmd {
	m.query.Page = 1
	m.query.Q = strings.TrimSpace(q)
	m.query.Sort = api.NormalizeSort(sort)
	m.query.Dir = api.NormalizeDir(dir)
	return m.loadMovies()
}

func (m *appModel) resetFilters() tea.Cmd {
	m.query.Page = 1
	m.query.Q = ""
	m.query.Sort = api.DefaultSort
	m.query.Dir = api.DefaultDir
	m.searchInput.SetValue("")
	return tea.Batch(m.showFlash(flashInfo, "Filters reset."), m.loadMovies())
}

// changePage is a no-op outside [1, totalPages].
func (m *appModel) changePage(delta int) tea.Cmd {
	next := m.query.Page + delta
	if next < 1 || next > m.totalPages {
		return nil
	}
	m.query.Page = next
	return m.loadMovies()
}

// changePageSize validates against the allowed set (silently substituting the
// default), persists the accepted value, and reloads from page 1.
func (m *appModel) changePageSize(size int) tea.Cmd {
	size = api.NormalizePageSize(size)
	m.query.PageSize = size
	m.query.Page = 1
	if err := m.prefs.Set(prefs.PageSizeKey, strconv.Itoa(size), prefs.PageSizeTTLDays); err != nil {
		log.Error().Err(err).Msg("persist page size failed")
	}
	return tea.Batch(
		m.showFlash(flashSuccess, fmt.Sprintf("Page size set to %d (saved).", size)),
		m.loadMovies(),
	)
}

func (m *appModel) cycleSort() tea.Cmd {
	next := api.SortFields[0]
	for i, f := range api.SortFields {
		if f == m.query.Sort {
			next = api.SortFields[(i+1)%len(api.SortFields)]
			break
		}
	}
	return m.applyFilters(m.query.Q, next, m.query.Dir)
}

func (m *appModel) toggleDir() tea.Cmd {
	dir := "desc"
	if m.query.Dir == "desc" {
		dir = "asc"
	}
	return m.applyFilters(m.query.Q, m.query.Sort, dir)
}

func (m *appModel) cyclePageSize() tea.Cmd {
	next := api.AllowedPageSizes[0]
	for i, s := range api.AllowedPageSizes {
		if s == m.query.PageSize {
			next = api.AllowedPageSizes[(i+1)%len(api.AllowedPageSizes)]
			break
		}
	}
	return m.changePageSize(next)
}

// pageRollbackAfterDelete reports whether the page index should step back one
// before the post-delete reload: only when the deleted row was the sole
// remainder on a page past the first. The authoritative filtered count isn't
// known until the reload, so this is the one case a deletion can be inferred
// to strand the view on an empty page.
func pageRollbackAfterDelete(page, pageSize, totalFiltered int) bool {
	return page > 1 && pageSize > 0 && totalFiltered%pageSize == 1
}

func (m appModel) updateListKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch k.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, (&m).applyFilters(m.searchInput.Value(), m.query.Sort, m.query.Dir)
		case "esc", "ctrl+g":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.query.Q)
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(k)
		return m, cmd
	}

	switch k.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query.Q)
		return m, m.searchInput.Focus()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.movies)-1 {
			m.selected++
		}
		return m, nil
	case "left", "h":
		return m, (&m).changePage(-1)
	case "right", "l":
		return m, (&m).changePage(1)
	case "s":
		return m, (&m).cycleSort()
	case "d":
		return m, (&m).toggleDir()
	case "p":
		return m, (&m).cyclePageSize()
	case "f":
		return m, (&m).resetFilters()
	case "r":
		return m, (&m).loadMovies()
	case "n":
		(&m).beginAdd()
		return m, nil
	case "enter", "e":
		if mv, ok := m.selectedMovie(); ok {
			(&m).beginEdit(mv)
		}
		return m, nil
	case "x", "delete":
		if mv, ok := m.selectedMovie(); ok {
			m.confirming = true
			m.confirmFocus = confirmFocusCancel
			m.deleteTarget = mv
		}
		return m, nil
	case "2":
		return m, (&m).enterView(viewForm)
	case "3":
		return m, (&m).enterView(viewStats)
	}
	return m, nil
}
