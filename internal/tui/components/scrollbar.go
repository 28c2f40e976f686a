package components

import "strings"

// RenderScrollbar renders a 1-column vertical scrollbar for a list showing
// viewHeight of contentHeight lines starting at yOffset. When everything fits
// it renders a blank gutter so the layout width stays stable.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}
	if contentHeight <= viewHeight {
		return strings.TrimSuffix(strings.Repeat(" \n", viewHeight), "\n")
	}

	thumbSize := max(1, viewHeight*viewHeight/contentHeight)
	thumbMaxTop := viewHeight - thumbSize
	thumbTop := yOffset * thumbMaxTop / (contentHeight - viewHeight)
	thumbTop = min(max(thumbTop, 0), thumbMaxTop)

	lines := make([]string, viewHeight)
	for i := range lines {
		if i >= thumbTop && i < thumbTop+thumbSize {
			lines[i] = "█"
		} else {
			lines[i] = "│"
		}
	}
	return strings.Join(lines, "\n")
}
