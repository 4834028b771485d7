package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// singleLine folds line breaks and tabs into spaces
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateToWidth truncates a string to fit within maxWidth terminal cells,
// ending with an ellipsis when anything was cut
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}
