package menu

import (
	"os"
	"path/filepath"
	"testing"
)

// readTestdata reads a file from the testdata directory.
func readTestdata(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("failed to read testdata %s: %v", filename, err)
	}
	return string(data)
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "<html><body>nothing here</body></html>"} {
		catalog := Parse(doc)
		if len(catalog) != 0 {
			t.Errorf("Parse(%q) = %d canteens, want empty catalog", doc, len(catalog))
		}
	}
}

func TestParse_SingleBlock(t *testing.T) {
	doc := `<table class="sp_tab">
		<tr><th><strong>Cafeteria ABC</strong></th></tr>
		<tr><td class="sp_typ">VEG</td><td class="sp_bez"><strong>Veggie Bowl</strong> with rice</td></tr>
	</table>`

	catalog := Parse(doc)
	m, ok := catalog["Cafeteria ABC"]
	if !ok {
		t.Fatalf("Parse() canteens = %v, want Cafeteria ABC", catalog.Names())
	}
	if len(m.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(m.Items))
	}

	got := m.Items[0]
	want := Item{Category: "VEG", Title: "Veggie Bowl", Details: "with rice"}
	if got != want {
		t.Errorf("item = %+v, want %+v", got, want)
	}
}

func TestParse_NoEmphasisInDescription(t *testing.T) {
	doc := `<table class="sp_tab">
		<tr><th><strong>Cafeteria ABC</strong></th></tr>
		<tr><td class="sp_typ">SOUP</td><td class="sp_bez">Soup of the day</td></tr>
	</table>`

	items := Parse(doc)["Cafeteria ABC"].Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Title != "Soup of the day" {
		t.Errorf("title = %q, want %q", items[0].Title, "Soup of the day")
	}
	if items[0].Details != "" {
		t.Errorf("details = %q, want absent", items[0].Details)
	}
}

func TestParse_DetailsNotAPrefixRemainder(t *testing.T) {
	// The emphasized title is not a prefix of the full text, so details
	// falls back to the full description.
	doc := `<table class="sp_tab">
		<tr><th><strong>Cafeteria ABC</strong></th></tr>
		<tr><td class="sp_typ">DAILY</td><td class="sp_bez">Fresh <strong>Pasta</strong> Bar</td></tr>
	</table>`

	items := Parse(doc)["Cafeteria ABC"].Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Title != "Pasta" {
		t.Errorf("title = %q, want %q", items[0].Title, "Pasta")
	}
	if items[0].Details != "Fresh Pasta Bar" {
		t.Errorf("details = %q, want %q", items[0].Details, "Fresh Pasta Bar")
	}
}

func TestParse_DetailsIdenticalToTitle(t *testing.T) {
	doc := `<table class="sp_tab">
		<tr><th><strong>Cafeteria ABC</strong></th></tr>
		<tr><td class="sp_typ">DAILY</td><td class="sp_bez"><strong>Stew</strong></td></tr>
	</table>`

	items := Parse(doc)["Cafeteria ABC"].Items
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Details != "" {
		t.Errorf("details = %q, want absent when identical to title", items[0].Details)
	}
}

func TestParse_Fixture(t *testing.T) {
	catalog := Parse(readTestdata(t, "alle.html"))

	// The third table has no emphasized canteen name and must be dropped
	// whole, not recorded as an empty entry.
	if len(catalog) != 2 {
		t.Fatalf("canteens = %v, want exactly Zentralmensa and Mensa am Turm", catalog.Names())
	}

	zentral, ok := catalog["Zentralmensa"]
	if !ok {
		t.Fatalf("Zentralmensa missing from %v", catalog.Names())
	}
	if zentral.Date != "Montag, 31.08.2026" {
		t.Errorf("date = %q, want %q", zentral.Date, "Montag, 31.08.2026")
	}
	wantItems := []Item{
		{Category: "Stammessen", Title: "Schnitzel Wiener Art", Details: "mit Pommes frites und Salat"},
		{Category: "Vegetarisch", Title: "Gemüsepfanne", Details: "mit Reis"},
		{Category: "Suppe", Title: "Tagessuppe"},
	}
	if len(zentral.Items) != len(wantItems) {
		t.Fatalf("Zentralmensa items = %+v, want %d entries", zentral.Items, len(wantItems))
	}
	for i, want := range wantItems {
		if zentral.Items[i] != want {
			t.Errorf("item[%d] = %+v, want %+v", i, zentral.Items[i], want)
		}
	}

	turm, ok := catalog["Mensa am Turm"]
	if !ok {
		t.Fatalf("Mensa am Turm missing from %v", catalog.Names())
	}
	// The row without a type cell is skipped, not recorded half-empty.
	if len(turm.Items) != 1 {
		t.Fatalf("Mensa am Turm items = %+v, want 1 entry", turm.Items)
	}
	want := Item{Category: "Angebot 1", Title: "Currywurst", Details: "mit Brötchen"}
	if turm.Items[0] != want {
		t.Errorf("item = %+v, want %+v", turm.Items[0], want)
	}
}

func TestParse_DuplicateCanteen(t *testing.T) {
	doc := `<table class="sp_tab">
		<tr><th><strong>Zentralmensa</strong></th></tr>
		<tr><td class="sp_typ">A</td><td class="sp_bez">first</td></tr>
	</table>
	<table class="sp_tab">
		<tr><th><strong>Zentralmensa</strong></th></tr>
		<tr><td class="sp_typ">B</td><td class="sp_bez">second</td></tr>
	</table>`

	catalog := Parse(doc)
	if len(catalog) != 1 {
		t.Fatalf("canteens = %v, want 1", catalog.Names())
	}
	items := catalog["Zentralmensa"].Items
	if len(items) != 1 || items[0].Category != "B" {
		t.Errorf("items = %+v, want the later block to win", items)
	}
}

func TestParse_BlocksStayIndependent(t *testing.T) {
	// A malformed first block must not swallow the second one.
	doc := `<table class="sp_tab">
		<tr><th>no name here</th></tr>
	</table>
	<table class="sp_tab">
		<tr><th><strong>Nordmensa</strong></th></tr>
		<tr><td class="sp_typ">A</td><td class="sp_bez">ok</td></tr>
	</table>`

	catalog := Parse(doc)
	if _, ok := catalog["Nordmensa"]; !ok || len(catalog) != 1 {
		t.Errorf("canteens = %v, want only Nordmensa", catalog.Names())
	}
}

func TestMarkers(t *testing.T) {
	// One check per marker so a template change points at the pattern that
	// needs updating.
	tests := []struct {
		name    string
		marker  interface{ MatchString(string) bool }
		input   string
		matches bool
	}{
		{"table", tableMarker, `<table class="sp_tab" cellspacing="0"><tr></tr></table>`, true},
		{"table_other_class", tableMarker, `<table class="layout"><tr></tr></table>`, false},
		{"header_cell", headerCellMarker, `<th colspan="2">X</th>`, true},
		{"emphasis", emphasisMarker, `<strong>Zentralmensa</strong>`, true},
		{"date", dateMarker, `<div class="sp_date">Montag</div>`, true},
		{"row", rowMarker, `<tr class="odd">cells</tr>`, true},
		{"type_cell", typeCellMarker, `<td class="sp_typ">VEG</td>`, true},
		{"type_cell_other", typeCellMarker, `<td class="sp_price">2,50</td>`, false},
		{"desc_cell", descCellMarker, `<td class="sp_bez">text</td>`, true},
		{"header_row", headerRowMarker, `<th>h</th>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.marker.MatchString(tt.input); got != tt.matches {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.matches)
			}
		})
	}
}
