package menu

import (
	"fmt"
	"strings"
)

// Render produces the display text for one canteen's menu.
//
// The header prefers the date label scraped from the document and falls
// back to the ISO date the caller requested. At most maxItems item lines
// are emitted; longer menus get a single trailing line with the omitted
// count. An empty menu renders a single "no items" line, which is a valid
// terminal state for days a canteen is closed.
func Render(canteen, isoDate, parsedDate string, items []Item, maxItems int) string {
	headerDate := parsedDate
	if headerDate == "" {
		headerDate = isoDate
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s", canteen, headerDate)

	if len(items) == 0 {
		b.WriteString("\nNo items found.")
		return b.String()
	}

	if maxItems < 0 {
		maxItems = 0
	}
	shown := items
	if maxItems < len(items) {
		shown = items[:maxItems]
	}
	for _, it := range shown {
		fmt.Fprintf(&b, "\n- %s: %s", it.Category, it.Title)
		if it.Details != "" {
			fmt.Fprintf(&b, " — %s", it.Details)
		}
	}

	if omitted := len(items) - len(shown); omitted > 0 {
		fmt.Fprintf(&b, "\n…and %d more.", omitted)
	}

	return b.String()
}
