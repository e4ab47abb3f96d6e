package printers

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/AtreyuArtax/printlist/pkg/glyph"
	"github.com/AtreyuArtax/printlist/pkg/layout"
)

// Preview draws the packed page as four bordered quadrant boxes in
// the terminal, using the same packer the print path uses but with a
// character-cell geometry.
type Preview struct {
	// ColWidth and QuadHeight are the inner quadrant size in cells.
	ColWidth   int
	QuadHeight int
}

// DefaultPreview matches an 80-column terminal.
func DefaultPreview() Preview {
	return Preview{ColWidth: 38, QuadHeight: 18}
}

// Geometry returns the cell-based geometry backing the preview. The
// packer is unit-agnostic, so one cell is one "pixel".
func (p Preview) Geometry() layout.Geometry {
	return layout.Geometry{
		PageW:      float64(2*p.ColWidth + 1),
		PageH:      float64(2*p.QuadHeight + 1),
		FoldGutter: 1,
		TitleBlock: 2,
		SectionGap: 1,
	}
}

// Measurer counts terminal lines: heading plus rule, then one line
// per wrapped item row.
func (p Preview) Measurer() layout.Measurer {
	return layout.MeasureFunc(func(name string, items []string) float64 {
		h := 2.0 // heading + rule
		for _, item := range items {
			h += float64(p.itemRows(item))
		}
		return h
	})
}

func (p Preview) itemRows(item string) int {
	wrapped := wordwrap.String(glyph.UncheckedMark+" "+item, p.ColWidth)
	return strings.Count(wrapped, "\n") + 1
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	faintStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Render returns the full preview: title line over a 2x2 grid of
// quadrant boxes.
func (p Preview) Render(title string, page layout.Page) string {
	if page.PlacedItems() == 0 {
		return titleStyle.Render(title) + "\n\n" +
			faintStyle.Render("nothing unchecked — the page would be empty") + "\n"
	}

	boxes := make([]string, 4)
	for q := range page.Quadrants {
		boxes[q] = boxStyle.
			Width(p.ColWidth + 2).
			Height(p.QuadHeight).
			Render(p.quadrant(page.Quadrants[q]))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, boxes[layout.TopLeft], boxes[layout.TopRight])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, boxes[layout.BottomLeft], boxes[layout.BottomRight])

	return titleStyle.Render(title) + "\n" +
		lipgloss.JoinVertical(lipgloss.Left, top, bottom) + "\n"
}

func (p Preview) quadrant(placed []layout.Placed) string {
	var b strings.Builder
	for i, sec := range placed {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render(sec.Name))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", min(len(sec.Name), p.ColWidth)))
		b.WriteString("\n")
		for _, item := range sec.Items {
			b.WriteString(wordwrap.String(glyph.UncheckedMark+" "+item, p.ColWidth))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
