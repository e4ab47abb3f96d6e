package pdf

import (
	"github.com/AtreyuArtax/printlist/pkg/layout"
)

// Measurer implements layout.Measurer with the same font metrics the
// renderer draws with, so packed heights match printed heights.
type Measurer struct {
	doc *docState
	geo layout.Geometry
}

// NewMeasurer builds a Measurer for the given geometry and text size.
// The underlying document is used for font metrics only and is never
// exported.
func NewMeasurer(geo layout.Geometry, textSize float64, withIcons bool) *Measurer {
	return &Measurer{
		doc: newDocState(newMetrics(textSize, withIcons)),
		geo: geo,
	}
}

// Measure returns the rendered height of a section box in pixels at
// the geometry's column width.
func (m *Measurer) Measure(name string, items []string) float64 {
	return m.doc.m.sectionHeight(m.doc.f, name, items, m.geo.ColumnWidth())
}
