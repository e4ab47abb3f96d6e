package layout

import (
	"github.com/AtreyuArtax/printlist/pkg/list"
)

// ContinuationSuffix labels the remainder of a split section.
const ContinuationSuffix = " (cont.)"

// Measurer reports the rendered height of a section box at the
// geometry's column width, excluding the inter-section gap. The
// packer assumes height is non-decreasing in item count for a fixed
// name; that holds for line-based layouts and is treated as an
// approximation, not a guarantee.
type Measurer interface {
	Measure(name string, items []string) float64
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(name string, items []string) float64

func (f MeasureFunc) Measure(name string, items []string) float64 {
	return f(name, items)
}

// Placed is one section entry inside a quadrant. A split source
// section appears as several Placed entries in consecutive quadrants,
// the later ones renamed with ContinuationSuffix.
type Placed struct {
	Name  string
	Items []string
}

// Page is the packed result: four quadrants in visiting order
// (TL, TR, BL, BR) plus the count of items that did not fit anywhere.
type Page struct {
	Quadrants [4][]Placed
	Dropped   int
}

// PlacedItems returns the total number of items placed on the page.
func (p Page) PlacedItems() int {
	n := 0
	for _, q := range p.Quadrants {
		for _, s := range q {
			n += len(s.Items)
		}
	}
	return n
}

// Pack distributes sections across the four quadrants in one forward
// pass. Each section is placed whole when it fits the remaining
// capacity of the current quadrant; otherwise the largest item prefix
// that fits is split off and the remainder continues in the next
// quadrant under a renamed label. Once the last quadrant is full the
// rest is dropped.
func Pack(sections []list.Section, m Measurer, geo Geometry) Page {
	var page Page

	q := 0
	used := 0.0
	first := true

	place := func(name string, items []string, h float64, gap float64) {
		page.Quadrants[q] = append(page.Quadrants[q], Placed{Name: name, Items: items})
		used += h + gap
		first = false
	}

	advance := func() {
		q++
		used = 0
		first = true
	}

	for si := 0; si < len(sections); si++ {
		name := sections[si].Name
		items := sections[si].Items
		cont := false

		for len(items) > 0 {
			if q > BottomRight {
				break
			}

			label := name
			if cont {
				label = name + ContinuationSuffix
			}

			gap := geo.SectionGap
			if first {
				gap = 0
			}
			capacity := geo.Capacity(q) - geo.SafetyEpsilon
			remaining := capacity - used - gap

			// Whole section first; an exact fit is placed whole.
			whole := m.Measure(label, items)
			if whole <= remaining {
				place(label, items, whole, gap)
				items = nil
				continue
			}

			// Largest prefix that fits the current quadrant. Layout
			// height is non-linear in item count (wrapping), so each
			// candidate is re-measured.
			best := 0
			lo, hi := 1, len(items)-1
			for lo <= hi {
				mid := (lo + hi) / 2
				if m.Measure(label, items[:mid]) <= remaining {
					best = mid
					lo = mid + 1
				} else {
					hi = mid - 1
				}
			}

			if best == 0 {
				// Not even one item fits here; try the next quadrant.
				advance()
				continue
			}

			h := m.Measure(label, items[:best])
			place(label, items[:best:best], h, gap)
			items = items[best:]
			cont = true
			advance()
		}

		if q > BottomRight {
			// Page exhausted; everything left over is dropped.
			page.Dropped += len(items)
			for _, rest := range sections[si+1:] {
				page.Dropped += len(rest.Items)
			}
			break
		}
	}

	return page
}
