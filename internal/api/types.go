package api

import (
	"fmt"
	"sort"
	"strings"
)

// Movie is one catalog record. Identity is the ID; every other field is
// editable via update.
type Movie struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url,omitempty"`
}

// PageResult is one page of movies plus the pagination metadata the server
// derived for it. It is replaced wholesale on every reload, never merged.
type PageResult struct {
	Movies        []Movie `json:"movies"`
	Page          int     `json:"page"`
	PageSize      int     `json:"pageSize"`
	TotalPages    int     `json:"totalPages"`
	TotalFiltered int     `json:"totalFiltered"`
}

// Stats is the aggregate view returned by GET /api/stats.
type Stats struct {
	TotalRecords     int     `json:"totalRecords"`
	CurrentPageSize  int     `json:"currentPageSize"`
	AverageRating    float64 `json:"averageRating"`
	TopDirector      string  `json:"topDirector,omitempty"`
	TopDirectorCount int     `json:"topDirectorCount,omitempty"`
}

// MoviePayload is the create/update request body. Year and rating are
// forwarded as the user typed them; the server owns numeric validation and
// reports per-field messages.
type MoviePayload struct {
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     string `json:"year"`
	Rating   string `json:"rating"`
	ImageURL string `json:"image_url"`
}

// Error is a non-2xx API response. Fields is populated only for structured
// validation failures ({"errors": {field: message}}); transport failures and
// unstructured error bodies leave it empty.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

// HasFieldErrors reports whether the response carried a per-field error map.
func (e *Error) HasFieldErrors() bool { return len(e.Fields) > 0 }

// FieldSummary renders the field errors one per line, sorted by field name,
// for non-interactive (CLI) output.
func (e *Error) FieldSummary() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", k, e.Fields[k])
	}
	return b.String()
}
