package menu

import "regexp"

// Template markers for the alle.html speiseplan document, one pattern per
// structural concern so template drift shows up as a single failing matcher
// test. All patterns are case-insensitive and treat the document as flat
// text: non-greedy spans, no tag balancing.
var (
	// tableMarker matches one whole per-canteen menu table.
	tableMarker = regexp.MustCompile(`(?is)<table class="sp_tab"[^>]*>.*?</table>`)

	// headerCellMarker matches the table's header cell, which carries the
	// canteen name and the optional date label.
	headerCellMarker = regexp.MustCompile(`(?is)<th[^>]*>(.*?)</th>`)

	// emphasisMarker matches the first emphasized span of a fragment; in
	// the header cell that is the canteen name, in a description cell the
	// dish title.
	emphasisMarker = regexp.MustCompile(`(?is)<strong>(.*?)</strong>`)

	// dateMarker matches the displayed date label inside the header cell.
	dateMarker = regexp.MustCompile(`(?is)<div class="sp_date">(.*?)</div>`)

	// rowMarker matches one table row.
	rowMarker = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)

	// typeCellMarker matches the dish-type cell of a row.
	typeCellMarker = regexp.MustCompile(`(?is)<td class="sp_typ">(.*?)</td>`)

	// descCellMarker matches the dish-description cell of a row.
	descCellMarker = regexp.MustCompile(`(?is)<td class="sp_bez">(.*?)</td>`)

	// headerRowMarker flags rows that are header rows, which carry no dish.
	headerRowMarker = regexp.MustCompile(`(?i)<th`)
)
