package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/list"
)

func TestMeasurerMonotonic(t *testing.T) {
	geo := layout.Letter()
	m := NewMeasurer(geo, 11, false)

	items := []string{}
	prev := m.Measure("Produce", items)
	if prev <= 0 {
		t.Fatalf("empty section should still have heading height, got %v", prev)
	}
	for i := 0; i < 8; i++ {
		items = append(items, "a perfectly ordinary grocery item")
		h := m.Measure("Produce", items)
		if h <= prev {
			t.Fatalf("height not increasing at %d items: %v -> %v", i+1, prev, h)
		}
		prev = h
	}
}

func TestMeasurerWrapsLongItems(t *testing.T) {
	geo := layout.Letter()
	m := NewMeasurer(geo, 11, false)

	short := m.Measure("S", []string{"milk"})
	long := m.Measure("S", []string{strings.Repeat("a very long item description ", 8)})
	if long <= short {
		t.Fatalf("wrapped item should be taller: %v vs %v", long, short)
	}
}

func TestRenderExport(t *testing.T) {
	geo := layout.Letter()
	r := NewRenderer(geo, Options{TextSize: 11})

	sections := []list.Section{
		{Name: "Produce", Items: []string{"Apples", "Bananas"}},
		{Name: "Dairy", Items: []string{"Milk"}},
	}
	page := layout.Pack(sections, r.NewMeasurer(), geo)
	r.Render("Groceries", page)
	if err := r.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := r.Export(out); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", data[:8])
	}
}

func TestRenderEmptyState(t *testing.T) {
	geo := layout.Letter()
	r := NewRenderer(geo, Options{})
	r.Render("List", layout.Page{})
	if err := r.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected PDF bytes")
	}
}
