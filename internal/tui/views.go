package tui

import (
	"fmt"
	"strconv"
	"strings"

	"moviecli/internal/api"

	"github.com/charmbracelet/lipgloss"
)

const maxContentW = 96

func (m appModel) View() string {
	if m.confirming {
		return m.renderDeleteConfirm()
	}

	var body string
	switch m.view {
	case viewForm:
		body = m.viewForm()
	case viewStats:
		body = m.viewStats()
	default:
		body = m.viewList()
	}

	sections := []string{m.renderTabs()}
	if f := m.renderFlash(); f != "" {
		sections = append(sections, f)
	}
	sections = append(sections, body, m.renderHelp())
	return strings.Join(sections, "\n\n")
}

// renderTabs marks exactly one navigation tab as current.
func (m appModel) renderTabs() string {
	tabs := []struct {
		v     view
		label string
	}{
		{viewList, "Movies"},
		{viewForm, "Add / Edit"},
		{viewStats, "Stats"},
	}

	active := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Background(colorSelectedBg).Foreground(colorSelectedFg)
	inactive := lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.v == m.view {
			parts = append(parts, active.Render(t.label))
		} else {
			parts = append(parts, inactive.Render(t.label))
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("moviecli")
	return title + "  " + strings.Join(parts, " ")
}

func (m appModel) renderFlash() string {
	if !m.flashVisible || m.flashText == "" {
		return ""
	}
	color := colorInfoFg
	switch m.flashKind {
	case flashSuccess:
		color = colorSuccessFg
	case flashError:
		color = colorErrorFg
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(m.flashText)
}

func (m appModel) viewList() string {
	var b strings.Builder

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View())
	} else {
		q := m.query.Q
		if q == "" {
			q = "(none)"
		}
		b.WriteString(styleMuted().Render(
			fmt.Sprintf("Filter: %s • Sort: %s %s", q, m.query.Sort, m.query.Dir)))
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spin.View() + " Loading…")
	} else {
		b.WriteString(styleMuted().Render(
			fmt.Sprintf("%d record(s) match • Page size %d", m.totalFiltered, m.query.PageSize)))
	}
	b.WriteString("\n\n")

	if len(m.movies) == 0 && !m.loading {
		b.WriteString(styleMuted().Render("No movies found. Try adjusting search or add a new movie."))
		b.WriteString("\n")
	} else {
		for i, mv := range m.movies {
			b.WriteString(m.renderMovieCard(mv, i == m.selected))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderPagination())
	return b.String()
}

func (m appModel) renderMovieCard(mv api.Movie, selected bool) string {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > maxContentW {
		w = maxContentW
	}

	card := lipgloss.NewStyle().
		Width(w).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)
	if selected {
		card = card.BorderForeground(colorAccent)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).
		Render(truncateToWidth(mv.Title, w-2))

	meta := fmt.Sprintf("%s • %d • Rating %.1f", mv.Director, mv.Year, mv.Rating)
	if strings.TrimSpace(mv.ImageURL) == "" {
		meta += " • no poster"
	}
	metaLine := lipgloss.NewStyle().Foreground(colorCardMetaFg).
		Render(truncateToWidth(meta, w-2))

	return card.Render(title + "\n" + metaLine)
}

// renderPagination mirrors the controls' enabled state: prev is muted at the
// first page, next at the last known page.
func (m appModel) renderPagination() string {
	page := m.resultPage
	if page < 1 {
		page = m.query.Page
	}
	info := fmt.Sprintf("Page %d of %d", page, m.totalPages)

	prevStyle := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	nextStyle := prevStyle
	if m.query.Page <= 1 {
		prevStyle = styleMuted()
	}
	if m.query.Page >= m.totalPages {
		nextStyle = styleMuted()
	}
	return prevStyle.Render("‹ prev") + "  " + info + "  " + nextStyle.Render("next ›")
}

func (m appModel) viewForm() string {
	var b strings.Builder

	if m.editingID == 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Add Movie") + "\n")
		b.WriteString(styleMuted().Render("Create a new record.") + "\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Edit Movie") + "\n")
		b.WriteString(styleMuted().Render(fmt.Sprintf("Editing ID %d", m.editingID)) + "\n\n")
	}

	errStyle := lipgloss.NewStyle().Foreground(colorErrorFg)
	for i := 0; i < fieldCount; i++ {
		if i == m.formFocus {
			b.WriteString(lipgloss.NewStyle().Bold(true).Render(fieldLabels[i]))
		} else {
			b.WriteString(styleMuted().Render(fieldLabels[i]))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if m.fieldErrs[i] != "" {
			b.WriteString(errStyle.Render(m.fieldErrs[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString(m.spin.View() + " Saving…\n")
	}
	return b.String()
}

func (m appModel) viewStats() string {
	const dash = "—"
	total, size, avg, top, topCount := dash, dash, dash, dash, ""
	if m.stats != nil {
		total = strconv.Itoa(m.stats.TotalRecords)
		size = strconv.Itoa(m.stats.CurrentPageSize)
		avg = strconv.FormatFloat(m.stats.AverageRating, 'f', 2, 64)
		if strings.TrimSpace(m.stats.TopDirector) != "" {
			top = m.stats.TopDirector
			topCount = fmt.Sprintf("%d movie(s)", m.stats.TopDirectorCount)
		}
	}

	label := styleMuted()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Catalog stats") + "\n\n")
	b.WriteString(label.Render("Total records    ") + total + "\n")
	b.WriteString(label.Render("Page size        ") + size + "\n")
	b.WriteString(label.Render("Average rating   ") + avg + "\n")
	line := label.Render("Top director     ") + top
	if topCount != "" {
		line += "  " + label.Render(topCount)
	}
	b.WriteString(line + "\n")
	return b.String()
}

func (m appModel) renderHelp() string {
	var h string
	switch m.view {
	case viewForm:
		h = "tab: next field  enter: save  ctrl+u: clear  ctrl+g: cancel edit  esc: back to list"
	case viewStats:
		h = "r: refresh  1: movies  2: add/edit  q: quit"
	default:
		h = "↑/↓: select  ←/→: page  /: search  s: sort  d: direction  p: page size  f: reset  n: new  enter: edit  x: delete  r: reload  q: quit"
	}
	return styleMuted().Render(h)
}
