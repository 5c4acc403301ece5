package tui

import (
	"strconv"

	"moviecli/internal/api"
	"moviecli/internal/config"
	"moviecli/internal/prefs"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	client *api.Client
	prefs  prefs.Store

	width  int
	height int

	view view

	// List state. query is the canonical request state; resultPage,
	// totalPages and totalFiltered mirror the latest accepted response.
	query         api.ListQuery
	movies        []api.Movie
	resultPage    int
	totalPages    int
	totalFiltered int
	selected      int
	loading       bool
	listSeq       int

	searchInput textinput.Model
	searching   bool

	spin spinner.Model

	// Delete confirmation gate. While open it owns the keyboard.
	confirming   bool
	confirmFocus confirmModalFocus
	deleteTarget api.Movie

	// Form binding. editingID 0 means add mode.
	editingID int64
	inputs    [fieldCount]textinput.Model
	fieldErrs [fieldCount]string
	formFocus int
	saving    bool

	stats *api.Stats

	// Flash notification: single slot, newest wins. seq guards the dismissal
	// timer so an older timer can't hide a newer message.
	flashText    string
	flashKind    string
	flashVisible bool
	flashSeq     int
}

func newAppModel(cfg config.Config) appModel {
	m := appModel{
		client: api.NewClient(cfg.APIURL, cfg.Timeout),
		prefs:  prefs.Store{Dir: cfg.ConfigDir},
		view:   viewList,
	}

	m.query = api.DefaultListQuery()
	m.query.PageSize = api.ParsePageSize(m.prefs.Get(prefs.PageSizeKey, strconv.Itoa(api.DefaultPageSize)))
	m.totalPages = 1

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search title or director"
	m.searchInput.CharLimit = 120
	m.searchInput.Width = 40

	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.CharLimit = 500
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldYear].CharLimit = 4
	m.inputs[fieldYear].Width = 8
	m.inputs[fieldRating].CharLimit = 4
	m.inputs[fieldRating].Width = 8

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	return m
}

// Init enters the list view. Preferences were already read in the
// constructor, so startup issues exactly one list reload.
func (m appModel) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

// enterView activates exactly one view and returns its entry command.
// Entering the form is inert: beginAdd/beginEdit prepare the binding before
// the transition.
func (m *appModel) enterView(v view) tea.Cmd {
	m.view = v
	switch v {
	case viewList:
		return m.loadMovies()
	case viewStats:
		m.stats = nil
		return m.loadStats()
	default:
		return nil
	}
}

func (m appModel) selectedMovie() (api.Movie, bool) {
	if m.selected < 0 || m.selected >= len(m.movies) {
		return api.Movie{}, false
	}
	return m.movies[m.selected], true
}
