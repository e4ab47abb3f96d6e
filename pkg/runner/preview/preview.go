// Package preview draws the packed page in the terminal.
package preview

import (
	"context"
	"fmt"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/list"
	"github.com/AtreyuArtax/printlist/pkg/printers"
)

// Preview shows how the list would pack, using a character-cell
// geometry in place of print pixels.
type Preview struct {
	Text string

	// Flat prints a plain colored listing instead of quadrant boxes.
	Flat bool
	// ShowKeys annotates items with their icon keys in flat mode.
	ShowKeys bool

	Lexicon icons.Lexicon
}

func (p *Preview) Do(ctx context.Context) error {
	model := list.Parse(p.Text)
	matcher := icons.NewMatcher(p.Lexicon)

	if p.Flat {
		pp := printers.PrettyPrint{ShowKeys: p.ShowKeys, Matcher: matcher}
		pp.NewLine()
		pp.Model(model)
		return nil
	}

	pv := printers.DefaultPreview()
	page := layout.Pack(model.Sections, pv.Measurer(), pv.Geometry())
	fmt.Println(pv.Render(model.Title, page))

	if page.Dropped > 0 {
		pp := printers.PrettyPrint{}
		pp.Notice("%d item(s) would not fit on the page", page.Dropped)
	}
	return nil
}
