package components

import (
	"strings"

	"github.com/pablasso/tempo/internal/tui/styles"
)

// HelpItem is one key hint in the status bar, e.g. {"enter", "Select"}.
type HelpItem struct {
	Key  string
	Desc string
}

// StatusBar renders a bottom help bar showing contextual key hints.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []HelpItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Key == "" {
			parts = append(parts, it.Desc)
			continue
		}
		parts = append(parts, it.Key+" "+it.Desc)
	}
	return styles.StatusBarStyle.Width(width).Render(strings.Join(parts, " • "))
}
