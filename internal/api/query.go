package api

import (
	"net/url"
	"strconv"
	"strings"
)

// AllowedPageSizes is the fixed set of page sizes the server accepts, in the
// order the UI cycles through them.
var AllowedPageSizes = []int{5, 10, 20, 50}

const (
	DefaultPageSize = 10
	DefaultSort     = "title"
	DefaultDir      = "asc"
)

// SortFields lists the server-recognized sort keys in UI cycling order.
var SortFields = []string{"title", "director", "year", "rating"}

// ListQuery is the canonical query state for GET /api/movies. Values are
// normalized on encode, so an out-of-range field is never sent raw.
type ListQuery struct {
	Page     int
	PageSize int
	Q        string
	Sort     string
	Dir      string
}

// DefaultListQuery returns the startup query: first page, default page size,
// no filter, title ascending.
func DefaultListQuery() ListQuery {
	return ListQuery{
		Page:     1,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
		Dir:      DefaultDir,
	}
}

// Encode renders the query string for the list endpoint. Parameter order is
// fixed (page, pageSize, q, sort, dir) so equal queries encode to byte-equal
// strings; q is omitted entirely when the trimmed filter text is empty.
func (q ListQuery) Encode() string {
	page := q.Page
	if page < 1 {
		page = 1
	}

	var b strings.Builder
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&pageSize=")
	b.WriteString(strconv.Itoa(NormalizePageSize(q.PageSize)))
	if s := strings.TrimSpace(q.Q); s != "" {
		b.WriteString("&q=")
		b.WriteString(url.QueryEscape(s))
	}
	b.WriteString("&sort=")
	b.WriteString(NormalizeSort(q.Sort))
	b.WriteString("&dir=")
	b.WriteString(NormalizeDir(q.Dir))
	return b.String()
}

// NormalizePageSize maps anything outside the allowed set to the default.
func NormalizePageSize(n int) int {
	for _, s := range AllowedPageSizes {
		if n == s {
			return n
		}
	}
	return DefaultPageSize
}

// ParsePageSize parses a stored page-size string (e.g. from the preference
// store) and normalizes it. Unparseable input yields the default.
func ParsePageSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultPageSize
	}
	return NormalizePageSize(n)
}

// NormalizeSort maps unknown sort keys to the default.
func NormalizeSort(s string) string {
	s = strings.TrimSpace(s)
	for _, f := range SortFields {
		if s == f {
			return s
		}
	}
	return DefaultSort
}

// NormalizeDir maps anything that is not "desc" to "asc".
func NormalizeDir(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == "desc" {
		return "desc"
	}
	return DefaultDir
}
