package tui

import "moviecli/internal/api"

type view int

const (
	viewList view = iota
	viewForm
	viewStats
)

// initMsg kicks off the first view entry after the program starts.
type initMsg struct{}

// moviesLoadedMsg carries a list response back into Update. The seq token is
// compared against the latest issued reload so a stale response can never
// overwrite a newer one.
type moviesLoadedMsg struct {
	seq    int
	result *api.PageResult
	err    error
}

type statsLoadedMsg struct {
	result *api.Stats
	err    error
}

type saveDoneMsg struct {
	updated bool
	err     error
}

type deleteDoneMsg struct {
	err error
}

type flashDoneMsg struct{ seq int }

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// Form field order mirrors the record shape; indices address the inputs and
// the error slots alike.
const (
	fieldTitle = iota
	fieldDirector
	fieldYear
	fieldRating
	fieldImageURL
	fieldCount
)

// fieldKeys are the wire names the server uses in its validation error map.
var fieldKeys = [fieldCount]string{"title", "director", "year", "rating", "image_url"}

var fieldLabels = [fieldCount]string{"Title", "Director", "Year", "Rating", "Image URL"}
