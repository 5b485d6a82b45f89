package menu

import (
	"strings"

	"github.com/jmylchreest/goelunch/pkg/htmltext"
)

// Parse scans a speiseplan document and returns the menus it contains.
//
// Parsing never fails: blocks or rows that don't match the template are
// skipped, and a document with no recognizable menu tables yields an empty
// catalog. An empty catalog is a meaningful "no menus found" result, not an
// error. When the same canteen name appears in more than one table the last
// table wins; the source template is not expected to repeat a canteen.
func Parse(document string) Catalog {
	catalog := Catalog{}

	for _, block := range tableMarker.FindAllString(document, -1) {
		name, date, ok := parseHeader(block)
		if !ok {
			continue
		}

		var items []Item
		for _, row := range rowMarker.FindAllStringSubmatch(block, -1) {
			if item, ok := parseRow(row[1]); ok {
				items = append(items, item)
			}
		}

		catalog[name] = CanteenMenu{Date: date, Items: items}
	}

	return catalog
}

// parseHeader extracts the canteen name and optional date label from a
// table block. A block whose header has no emphasized name is unusable and
// is reported with ok=false so the caller discards it whole.
func parseHeader(block string) (name, date string, ok bool) {
	header := headerCellMarker.FindStringSubmatch(block)
	if header == nil {
		return "", "", false
	}

	em := emphasisMarker.FindStringSubmatch(header[1])
	if em == nil {
		return "", "", false
	}
	name = htmltext.StripTags(em[1])
	if name == "" {
		return "", "", false
	}

	if d := dateMarker.FindStringSubmatch(header[1]); d != nil {
		date = htmltext.StripTags(d[1])
	}
	return name, date, true
}

// parseRow extracts one menu item from a row's inner markup. Header rows
// and rows missing either the type or the description cell carry no item.
func parseRow(row string) (Item, bool) {
	if headerRowMarker.MatchString(row) {
		return Item{}, false
	}

	typeCell := typeCellMarker.FindStringSubmatch(row)
	descCell := descCellMarker.FindStringSubmatch(row)
	if typeCell == nil || descCell == nil {
		return Item{}, false
	}

	category := htmltext.StripTags(typeCell[1])
	descHTML := descCell[1]

	title := htmltext.StripTags(descHTML)
	if em := emphasisMarker.FindStringSubmatch(descHTML); em != nil {
		title = htmltext.StripTags(em[1])
	}

	full := htmltext.StripTags(descHTML)
	details := full
	if strings.HasPrefix(full, title) {
		details = htmltext.Normalize(strings.TrimPrefix(full, title))
	}
	if details == title {
		details = ""
	}

	return Item{Category: category, Title: title, Details: details}, true
}
