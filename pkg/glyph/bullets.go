// Package glyph defines the bullet marks the list grammar understands.
package glyph

// Glyph pairs a printable symbol with its meaning in a checklist.
type Glyph struct {
	Symbol  string
	Meaning string
	Checked bool
}

const (
	// UncheckedMark is the single-glyph prefix for an open item,
	// equivalent to "- [ ]".
	UncheckedMark = "•"

	// CheckedMark is the single-glyph prefix for a completed item,
	// equivalent to "- [x]". Checked items are never rendered.
	CheckedMark = "✗"
)

// DefaultGlyphs returns the legend of recognized bullet forms, in the
// order the parser tries them.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Symbol:  "- [x]",
			Meaning: "completed item (discarded)",
			Checked: true,
		},
		{
			Symbol:  "- [ ]",
			Meaning: "open item",
		},
		{
			Symbol:  CheckedMark,
			Meaning: "completed item (discarded)",
			Checked: true,
		},
		{
			Symbol:  UncheckedMark,
			Meaning: "open item",
		},
		{
			Symbol:  "-",
			Meaning: "open item (plain bullet, also * and +)",
		},
		{
			Symbol:  "#",
			Meaning: "title or section heading",
		},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}
