// Package pdf renders a packed list page to a single-page Letter PDF
// and provides the height measurer the packer needs for it.
package pdf

import (
	"codeberg.org/go-pdf/fpdf"
)

// Geometry is expressed in pixels at 96 DPI; fpdf works in points.
const ptPerPx = 72.0 / 96.0

const fontFamily = "Helvetica"

// DefaultTextSize is the item font size in points when no preference
// is stored.
const DefaultTextSize = 11.0

// metrics holds the vertical math shared by measurement and drawing.
// Both sides must advance by identical amounts or packed sections
// would overflow their quadrants. All values are pixels.
type metrics struct {
	size     float64 // item font size, points
	headSize float64 // section heading font size, points
	lineH    float64 // item line height
	headH    float64 // heading line height
	ruleGap  float64 // gap below the heading rule
	itemGap  float64 // gap between items
	iconCol  float64 // width reserved for the item icon

	withIcons bool
}

func newMetrics(textSize float64, withIcons bool) metrics {
	if textSize <= 0 {
		textSize = DefaultTextSize
	}
	m := metrics{
		size:      textSize,
		headSize:  textSize + 2,
		ruleGap:   5,
		itemGap:   2,
		withIcons: withIcons,
	}
	m.lineH = m.size * 1.35 / ptPerPx
	m.headH = m.headSize * 1.4 / ptPerPx
	if withIcons {
		m.iconCol = m.lineH + 6
	}
	return m
}

// itemWidth is the wrapping width for item text, in points.
func (m metrics) itemWidth(colWidthPx float64) float64 {
	return (colWidthPx - m.iconCol) * ptPerPx
}

// itemLines wraps one item at the column width using the document's
// font metrics.
func (m metrics) itemLines(f *fpdf.Fpdf, item string, colWidthPx float64) []string {
	f.SetFont(fontFamily, "", m.size)
	return f.SplitText(item, m.itemWidth(colWidthPx))
}

// sectionHeight measures one section box: heading, rule, and wrapped
// items. The inter-section gap is the packer's concern, not ours.
func (m metrics) sectionHeight(f *fpdf.Fpdf, name string, items []string, colWidthPx float64) float64 {
	h := m.headH + m.ruleGap
	for _, item := range items {
		lines := m.itemLines(f, item, colWidthPx)
		if len(lines) == 0 {
			lines = []string{""}
		}
		h += float64(len(lines))*m.lineH + m.itemGap
	}
	return h
}

// docState pairs a single-page Letter document with its metrics.
type docState struct {
	f *fpdf.Fpdf
	m metrics
}

func newDocState(m metrics) *docState {
	f := fpdf.New("P", "pt", "Letter", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	f.AddPage()
	f.SetFont(fontFamily, "", m.size)
	return &docState{f: f, m: m}
}
