package printers

import (
	"strings"
	"testing"

	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/list"
)

func TestPreviewMeasurerCountsWrappedLines(t *testing.T) {
	p := Preview{ColWidth: 10, QuadHeight: 10}
	m := p.Measurer()

	// Heading plus rule is two rows.
	if h := m.Measure("S", nil); h != 2 {
		t.Fatalf("empty section height = %v", h)
	}

	// A short item is one row; a long one wraps.
	short := m.Measure("S", []string{"milk"})
	if short != 3 {
		t.Fatalf("short item height = %v", short)
	}
	long := m.Measure("S", []string{"a rather long grocery item"})
	if long <= short {
		t.Fatalf("expected wrapping to add rows: %v vs %v", long, short)
	}
}

func TestPreviewRender(t *testing.T) {
	p := DefaultPreview()
	sections := []list.Section{
		{Name: "Produce", Items: []string{"Apples", "Bananas"}},
	}
	page := layout.Pack(sections, p.Measurer(), p.Geometry())

	out := p.Render("Groceries", page)
	for _, want := range []string{"Groceries", "Produce", "Apples", "Bananas"} {
		if !strings.Contains(out, want) {
			t.Fatalf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewRenderEmpty(t *testing.T) {
	p := DefaultPreview()
	out := p.Render("List", layout.Page{})
	if !strings.Contains(out, "nothing unchecked") {
		t.Fatalf("expected empty-state message, got:\n%s", out)
	}
}
