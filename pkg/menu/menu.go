// Package menu parses the Studentenwerk Göttingen speiseplan document and
// turns it into structured, displayable canteen menus.
//
// The document is a known HTML template ("alle.html") containing one table
// per canteen. The package treats it as opaque semi-structured text and
// matches only the template's class markers; it is not a general HTML
// parser. See markers.go for the full set of patterns.
package menu

// Item is a single dish line on a canteen's menu.
type Item struct {
	// Category is the short dish-type tag from the type cell (e.g. "VEG").
	Category string `json:"category" yaml:"category"`

	// Title is the leading emphasized text of the description cell, or the
	// whole description when the template carries no emphasis.
	Title string `json:"title" yaml:"title"`

	// Details is the remainder of the description after the title. Empty
	// means absent; it is never equal to Title.
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// CanteenMenu holds one canteen's offering for a single day.
type CanteenMenu struct {
	// Date is the date label as displayed in the source document. It may be
	// empty when the template omits it for a canteen.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Items in document order. Order is display order.
	Items []Item `json:"items" yaml:"items"`
}

// Catalog maps canteen names (as extracted, case-sensitive) to their menus.
// A Catalog is built fresh by Parse and never mutated afterwards.
type Catalog map[string]CanteenMenu

// Names returns the canteen names in the catalog, unsorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}
