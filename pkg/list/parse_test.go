package list

import (
	"reflect"
	"testing"
)

func TestParseCheckedDiscarded(t *testing.T) {
	m := Parse("- [x] a\n- [ ] b")
	if len(m.Sections) != 1 {
		t.Fatalf("expected one section, got %d", len(m.Sections))
	}
	if got := m.Sections[0].Items; !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}
	if m.Sections[0].Name != implicitSection {
		t.Fatalf("expected implicit section, got %q", m.Sections[0].Name)
	}
}

func TestParseAllCheckedIsEmpty(t *testing.T) {
	m := Parse("# Done\n- [x] a\n- [X] b\n✗ c")
	if !m.Empty() {
		t.Fatalf("expected empty model, got %+v", m)
	}
	if m.Title != "Done" {
		t.Fatalf("expected title Done, got %q", m.Title)
	}
}

func TestParseTitleAndSections(t *testing.T) {
	m := Parse("# Title\n## Produce\n- apple")
	if m.Title != "Title" {
		t.Fatalf("title = %q", m.Title)
	}
	if len(m.Sections) != 1 || m.Sections[0].Name != "Produce" {
		t.Fatalf("sections = %+v", m.Sections)
	}
	if !reflect.DeepEqual(m.Sections[0].Items, []string{"apple"}) {
		t.Fatalf("items = %v", m.Sections[0].Items)
	}
}

func TestParseSecondLevelOneHeadingStartsSection(t *testing.T) {
	m := Parse("# First\n# Second\n- milk")
	if m.Title != "First" {
		t.Fatalf("title = %q", m.Title)
	}
	if len(m.Sections) != 1 || m.Sections[0].Name != "Second" {
		t.Fatalf("sections = %+v", m.Sections)
	}
}

func TestParseCustomGlyphs(t *testing.T) {
	m := Parse("Trip\n• tent\n✗ stove\n• lantern")
	if m.Title != "Trip" {
		t.Fatalf("title = %q", m.Title)
	}
	want := []string{"tent", "lantern"}
	if !reflect.DeepEqual(m.Sections[0].Items, want) {
		t.Fatalf("items = %v, want %v", m.Sections[0].Items, want)
	}
}

func TestParseBulletVariants(t *testing.T) {
	m := Parse("Groceries\n- one\n* two\n+ three")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(m.Sections[0].Items, want) {
		t.Fatalf("items = %v, want %v", m.Sections[0].Items, want)
	}
}

func TestParsePlainLineStartsSection(t *testing.T) {
	m := Parse("Groceries\nProduce\n- apple\nDairy\n- milk")
	if m.Title != "Groceries" {
		t.Fatalf("title = %q", m.Title)
	}
	if len(m.Sections) != 2 {
		t.Fatalf("sections = %+v", m.Sections)
	}
	if m.Sections[0].Name != "Produce" || m.Sections[1].Name != "Dairy" {
		t.Fatalf("section names = %q, %q", m.Sections[0].Name, m.Sections[1].Name)
	}
}

func TestParseDefaultTitle(t *testing.T) {
	m := Parse("- [ ] bread")
	if m.Title != DefaultTitle {
		t.Fatalf("title = %q", m.Title)
	}
}

func TestParseEmptySectionsFiltered(t *testing.T) {
	m := Parse("# T\n## Empty\n## Full\n- thing\n## AlsoEmpty")
	if len(m.Sections) != 1 || m.Sections[0].Name != "Full" {
		t.Fatalf("sections = %+v", m.Sections)
	}
}

func TestParseStability(t *testing.T) {
	src := "Groceries\n## Produce\n- [ ] Apples\n- [x] Bananas\n## Dairy\n- Milk"
	a := Parse(src)
	b := Parse(src)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("parsing is not stable: %+v vs %+v", a, b)
	}
}

func TestParseCheckboxCaseInsensitive(t *testing.T) {
	m := Parse("- [X] gone\n* [x] also gone\n- [ ] kept")
	if got := m.ItemCount(); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
}
