// Package render runs the full parse, pack, and export pipeline.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/list"
	"github.com/AtreyuArtax/printlist/pkg/pdf"
	"github.com/AtreyuArtax/printlist/pkg/printers"
)

// Render turns one block of list text into a single-page PDF.
type Render struct {
	// Text is the raw list source.
	Text string
	// Out is the destination path.
	Out string

	TextSize float64
	Geometry layout.Geometry

	Lexicon  icons.Lexicon
	Assets   icons.Assets
	UseIcons bool

	// Quiet suppresses the overflow notice.
	Quiet bool
}

// Do parses, packs, renders, and exports. Overflow beyond the four
// quadrants is reported, not fatal.
func (r *Render) Do(ctx context.Context) error {
	if r.Out == "" {
		return errors.New("render: no output path")
	}

	model := list.Parse(r.Text)

	opts := pdf.Options{
		TextSize: r.TextSize,
		Matcher:  icons.NewMatcher(r.Lexicon),
		Assets:   r.Assets,
		UseIcons: r.UseIcons,
	}
	renderer := pdf.NewRenderer(r.Geometry, opts)

	page := layout.Pack(model.Sections, renderer.NewMeasurer(), r.Geometry)
	if page.Dropped > 0 && !r.Quiet {
		pp := printers.PrettyPrint{}
		pp.Notice("%d item(s) did not fit on the page and were dropped", page.Dropped)
	}

	renderer.Render(model.Title, page)
	if err := renderer.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := renderer.Export(r.Out); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Printf("wrote %s (%d item(s) in %d section(s))\n", r.Out, page.PlacedItems(), len(model.Sections))
	return nil
}
