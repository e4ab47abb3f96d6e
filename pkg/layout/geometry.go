// Package layout packs list sections into four printable quadrants
// using a caller-supplied height measurer.
package layout

// Quadrant indexes in visiting order.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Geometry describes the print page in pixels at a fixed DPI. All
// heights the packer reasons about are derived from it, so a measurer
// and the renderer must agree on the same Geometry.
type Geometry struct {
	DPI   float64
	PageW float64
	PageH float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// FoldGutter separates the 2x2 quadrant grid so the page can be
	// folded into quarters.
	FoldGutter float64

	// TitleBlock is the height reserved above the grid content for
	// the list title; it reduces the first quadrant only.
	TitleBlock float64

	// SectionGap is added before every section except the first in a
	// quadrant.
	SectionGap float64

	// TrimGuards are per-quadrant capacity reductions. The defaults
	// compensate for rendering overflow observed on the top row with
	// the stock font configuration; they are calibration values, not
	// invariants.
	TrimGuards [4]float64

	// SafetyEpsilon is subtracted from every capacity check.
	SafetyEpsilon float64
}

// Letter returns the geometry of a portrait US Letter page at 96 DPI.
func Letter() Geometry {
	return Geometry{
		DPI:           96,
		PageW:         816,
		PageH:         1056,
		MarginTop:     24,
		MarginRight:   24,
		MarginBottom:  24,
		MarginLeft:    24,
		FoldGutter:    16,
		TitleBlock:    44,
		SectionGap:    10,
		TrimGuards:    [4]float64{6, 4, 0, 0},
		SafetyEpsilon: 0.5,
	}
}

// ContentWidth is the printable width inside the margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageW - g.MarginLeft - g.MarginRight
}

// ContentHeight is the printable height inside the margins.
func (g Geometry) ContentHeight() float64 {
	return g.PageH - g.MarginTop - g.MarginBottom
}

// ColumnWidth is the usable width of one quadrant column.
func (g Geometry) ColumnWidth() float64 {
	return (g.ContentWidth() - g.FoldGutter) / 2
}

// QuadrantHeight is the raw height of one quadrant region.
func (g Geometry) QuadrantHeight() float64 {
	return (g.ContentHeight() - g.FoldGutter) / 2
}

// Capacity is the usable height of quadrant q: the raw quadrant
// height minus that quadrant's trim guard, and for the first quadrant
// minus the title block as well.
func (g Geometry) Capacity(q int) float64 {
	c := g.QuadrantHeight() - g.TrimGuards[q]
	if q == TopLeft {
		c -= g.TitleBlock
	}
	return c
}

// Origin returns the top-left corner of quadrant q on the page. The
// first quadrant's origin sits below the title block.
func (g Geometry) Origin(q int) (x, y float64) {
	x = g.MarginLeft
	if q == TopRight || q == BottomRight {
		x += g.ColumnWidth() + g.FoldGutter
	}
	y = g.MarginTop
	if q == BottomLeft || q == BottomRight {
		y += g.QuadrantHeight() + g.FoldGutter
	}
	if q == TopLeft {
		y += g.TitleBlock
	}
	return x, y
}
