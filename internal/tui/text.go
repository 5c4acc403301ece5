package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncateToWidth collapses newlines and cuts the string to the given cell
// width, appending an ellipsis when anything was dropped.
func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}
