package pdf

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/layout"
)

// Options configures one render.
type Options struct {
	// TextSize is the item font size in points; zero means
	// DefaultTextSize.
	TextSize float64

	// Matcher and Assets attach icons to recognized items. With
	// UseIcons false items render as plain text.
	Matcher  icons.Matcher
	Assets   icons.Assets
	UseIcons bool
}

// EmptyMessage is printed when the list holds no unchecked items.
const EmptyMessage = "Nothing left to do — every item is checked off."

// Renderer draws a packed page onto a single Letter PDF page.
type Renderer struct {
	doc  *docState
	geo  layout.Geometry
	opts Options
}

// NewRenderer builds a renderer for one export. Renderers are single
// use: render, then export.
func NewRenderer(geo layout.Geometry, opts Options) *Renderer {
	return &Renderer{
		doc:  newDocState(newMetrics(opts.TextSize, opts.UseIcons)),
		geo:  geo,
		opts: opts,
	}
}

// NewMeasurer returns the measurer matching this renderer's metrics.
func (r *Renderer) NewMeasurer() *Measurer {
	return NewMeasurer(r.geo, r.opts.TextSize, r.opts.UseIcons)
}

// Render draws the title block, fold marks, and all four quadrants.
func (r *Renderer) Render(title string, page layout.Page) {
	r.drawTitle(title)
	r.drawFoldMarks()

	if page.PlacedItems() == 0 {
		r.drawEmptyState()
		return
	}

	for q := range page.Quadrants {
		r.drawQuadrant(q, page.Quadrants[q])
	}
}

// Export writes the rendered page to path and closes the document.
func (r *Renderer) Export(path string) error {
	if err := r.doc.f.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: export %s: %w", path, err)
	}
	return nil
}

// Output streams the rendered page to w and closes the document.
func (r *Renderer) Output(w io.Writer) error {
	if err := r.doc.f.OutputAndClose(writeCloser{w}); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

type writeCloser struct{ io.Writer }

func (writeCloser) Close() error { return nil }

func (r *Renderer) drawTitle(title string) {
	f := r.doc.f
	f.SetTitle(title, true)
	f.SetFont(fontFamily, "B", r.doc.m.headSize+4)
	f.SetTextColor(0, 0, 0)
	f.SetXY(r.geo.MarginLeft*ptPerPx, r.geo.MarginTop*ptPerPx)
	f.CellFormat(r.geo.ContentWidth()*ptPerPx, r.geo.TitleBlock*ptPerPx*0.8,
		title, "", 0, "CM", false, 0, "")
}

// drawFoldMarks draws light rules along the gutter midlines so the
// printed page can be folded into quarters.
func (r *Renderer) drawFoldMarks() {
	f := r.doc.f
	midX := (r.geo.MarginLeft + r.geo.ColumnWidth() + r.geo.FoldGutter/2) * ptPerPx
	midY := (r.geo.MarginTop + r.geo.QuadrantHeight() + r.geo.FoldGutter/2) * ptPerPx

	f.SetDrawColor(205, 205, 205)
	f.SetLineWidth(0.6)
	f.Line(midX, r.geo.MarginTop*ptPerPx, midX, (r.geo.PageH-r.geo.MarginBottom)*ptPerPx)
	f.Line(r.geo.MarginLeft*ptPerPx, midY, (r.geo.PageW-r.geo.MarginRight)*ptPerPx, midY)
}

func (r *Renderer) drawEmptyState() {
	f := r.doc.f
	f.SetFont(fontFamily, "I", r.doc.m.size+1)
	f.SetTextColor(120, 120, 120)
	f.SetXY(r.geo.MarginLeft*ptPerPx, (r.geo.PageH/2-20)*ptPerPx)
	f.CellFormat(r.geo.ContentWidth()*ptPerPx, 20*ptPerPx, EmptyMessage, "", 0, "CM", false, 0, "")
}

func (r *Renderer) drawQuadrant(q int, placed []layout.Placed) {
	ox, oy := r.geo.Origin(q)
	y := oy
	for i, sec := range placed {
		if i > 0 {
			y += r.geo.SectionGap
		}
		y = r.drawSection(ox, y, sec)
	}
}

// drawSection renders one section box at (x, y) px and returns the y
// below it. The vertical advance mirrors metrics.sectionHeight.
func (r *Renderer) drawSection(x, y float64, sec layout.Placed) float64 {
	f := r.doc.f
	m := r.doc.m
	colW := r.geo.ColumnWidth()

	f.SetFont(fontFamily, "B", m.headSize)
	f.SetTextColor(0, 0, 0)
	f.SetXY(x*ptPerPx, y*ptPerPx)
	f.CellFormat(colW*ptPerPx, m.headH*ptPerPx, sec.Name, "", 0, "LM", false, 0, "")

	y += m.headH
	f.SetDrawColor(60, 60, 60)
	f.SetLineWidth(0.8)
	f.Line(x*ptPerPx, y*ptPerPx, (x+colW)*ptPerPx, y*ptPerPx)
	y += m.ruleGap

	for _, item := range sec.Items {
		y = r.drawItem(x, y, item, colW)
	}
	return y
}

func (r *Renderer) drawItem(x, y float64, item string, colW float64) float64 {
	f := r.doc.f
	m := r.doc.m

	if m.withIcons {
		if key, ok := r.opts.Matcher.MatchKey(item); ok {
			if path, ok := r.opts.Assets.Resolve(key); ok {
				size := (m.lineH - 2) * ptPerPx
				f.ImageOptions(path, x*ptPerPx, (y+1)*ptPerPx, size, size,
					false, fpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
			}
			// A missing asset just leaves the icon column blank.
		}
	}

	lines := m.itemLines(f, item, colW)
	if len(lines) == 0 {
		lines = []string{""}
	}
	f.SetFont(fontFamily, "", m.size)
	f.SetTextColor(20, 20, 20)
	for _, line := range lines {
		f.SetXY((x+m.iconCol)*ptPerPx, y*ptPerPx)
		f.CellFormat((colW-m.iconCol)*ptPerPx, m.lineH*ptPerPx, line, "", 0, "LM", false, 0, "")
		y += m.lineH
	}
	return y + m.itemGap
}

// Err surfaces any accumulated drawing error.
func (r *Renderer) Err() error {
	if r.doc.f.Err() {
		return fmt.Errorf("pdf: %w", r.doc.f.Error())
	}
	return nil
}
