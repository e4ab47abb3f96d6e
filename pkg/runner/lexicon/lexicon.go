// Package lexicon prints the icon vocabulary legend.
package lexicon

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/AtreyuArtax/printlist/pkg/glyph"
	"github.com/AtreyuArtax/printlist/pkg/icons"
)

// Legend renders the synonym table and canonical key list.
type Legend struct {
	Lexicon icons.Lexicon
}

// Do renders the bullet legend and the lexicon to stdout.
func (l *Legend) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	l.bullets()
	_, _ = fmt.Fprintln(color.Output, "")

	if l.Lexicon.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " no lexicon loaded; icons disabled")
		return nil
	}

	bold := color.New(color.Bold)

	syn := l.Lexicon.Synonyms()
	phrases := make([]string, 0, len(syn))
	for p := range syn {
		phrases = append(phrases, p)
	}
	sort.Strings(phrases)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Synonym"), bold.Sprint("Icon key"))
	for _, p := range phrases {
		tbl.AddRow(p, syn[p])
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	keys := l.Lexicon.Canonical()
	sort.Strings(keys)
	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = bold.Fprintf(color.Output, "%d canonical key(s)\n", len(keys))
	for _, k := range keys {
		_, _ = fmt.Fprintf(color.Output, "  %s\n", k)
	}

	return nil
}

// bullets renders the recognized list marks.
func (l *Legend) bullets() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Bullets"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
