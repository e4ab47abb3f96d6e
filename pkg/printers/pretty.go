// Package printers renders parsed and packed lists for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/AtreyuArtax/printlist/pkg/glyph"
	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/list"
)

// PrettyPrint writes a flat colored rendition of a parsed list.
type PrettyPrint struct {
	// ShowKeys annotates each item with its resolved icon key.
	ShowKeys bool
	Matcher  icons.Matcher
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Model prints the whole parsed model, one section at a time.
func (pp *PrettyPrint) Model(m list.Model) {
	pp.Title(m.Title)
	pp.NewLine()
	if m.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" nothing unchecked")
		return
	}
	for _, s := range m.Sections {
		pp.Section(s)
	}
}

// Section prints one named group of items.
func (pp *PrettyPrint) Section(s list.Section) {
	h := color.New(color.Bold)
	t := color.New()
	k := color.New(color.FgHiYellow, color.Faint, color.Italic)

	_, _ = h.Println(s.Name)
	for _, item := range s.Items {
		_, _ = t.Printf("  %s %s", glyph.UncheckedMark, item)
		if pp.ShowKeys {
			if key, ok := pp.Matcher.MatchKey(item); ok {
				_, _ = k.Printf("  [%s]", key)
			}
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Notice prints a non-blocking warning, e.g. a lexicon load failure
// or dropped overflow items.
func (pp *PrettyPrint) Notice(format string, args ...interface{}) {
	w := color.New(color.FgYellow)
	_, _ = w.Fprintf(color.Error, "note: %s\n", strings.TrimSpace(fmt.Sprintf(format, args...)))
}
