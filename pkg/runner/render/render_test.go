package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/list"
)

const sampleText = "Groceries\n## Produce\n- [ ] Apples\n- [x] Bananas\n## Dairy\n- Milk"

func TestEndToEnd(t *testing.T) {
	// The parse half of the pipeline.
	model := list.Parse(sampleText)
	if model.Title != "Groceries" {
		t.Fatalf("title = %q", model.Title)
	}
	if len(model.Sections) != 2 {
		t.Fatalf("sections = %+v", model.Sections)
	}
	if model.Sections[0].Name != "Produce" || model.Sections[0].Items[0] != "Apples" {
		t.Fatalf("produce = %+v", model.Sections[0])
	}
	if model.Sections[1].Name != "Dairy" || model.Sections[1].Items[0] != "Milk" {
		t.Fatalf("dairy = %+v", model.Sections[1])
	}

	// Every item resolves an icon key under the default lexicon.
	m := icons.NewMatcher(icons.DefaultLexicon())
	for _, s := range model.Sections {
		for _, item := range s.Items {
			if key, ok := m.MatchKey(item); !ok {
				t.Fatalf("no icon key for %q", item)
			} else if key == "" {
				t.Fatalf("empty key for %q", item)
			}
		}
	}

	// Ample capacity: everything lands in the first quadrant.
	geo := layout.Letter()
	page := layout.Pack(model.Sections, layout.MeasureFunc(func(name string, items []string) float64 {
		return 10 + 14*float64(len(items))
	}), geo)
	if len(page.Quadrants[layout.TopLeft]) != 2 {
		t.Fatalf("expected both sections in TL, got %+v", page.Quadrants)
	}
	if page.Dropped != 0 {
		t.Fatalf("dropped = %d", page.Dropped)
	}

	// The export half.
	out := filepath.Join(t.TempDir(), "groceries.pdf")
	r := Render{
		Text:     sampleText,
		Out:      out,
		Geometry: geo,
		Lexicon:  icons.DefaultLexicon(),
		Quiet:    true,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected exported PDF, err=%v", err)
	}
}

func TestRenderRequiresOut(t *testing.T) {
	r := Render{Text: "- a"}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for missing output path")
	}
}
