package list

import (
	"regexp"
	"strings"

	"github.com/AtreyuArtax/printlist/pkg/glyph"
)

// DefaultTitle is used when the source never names one.
const DefaultTitle = "List"

// implicitSection holds items that appear before any heading.
const implicitSection = "Items"

type lineKind int

const (
	lineChecked lineKind = iota
	lineUnchecked
	linePlain
	lineHeading
)

type parsedLine struct {
	kind  lineKind
	level int // heading level, 1..6
	text  string
}

type lineRule struct {
	re      *regexp.Regexp
	extract func(m []string) parsedLine
}

// lineRules are tried in order; the first match wins. Order matters:
// a checkbox line also matches the plain-bullet pattern, so the
// checkbox forms must come first.
var lineRules = []lineRule{
	{
		re: regexp.MustCompile(`^\s*[-*+]\s+\[[xX]\]\s*(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineChecked, text: m[1]}
		},
	},
	{
		re: regexp.MustCompile(`^\s*[-*+]\s+\[ \]\s*(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineUnchecked, text: m[1]}
		},
	},
	{
		re: regexp.MustCompile(`^\s*` + regexp.QuoteMeta(glyph.CheckedMark) + `\s*(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineChecked, text: m[1]}
		},
	},
	{
		re: regexp.MustCompile(`^\s*` + regexp.QuoteMeta(glyph.UncheckedMark) + `\s*(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineUnchecked, text: m[1]}
		},
	},
	{
		re: regexp.MustCompile(`^\s*[-*+]\s+(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineUnchecked, text: m[1]}
		},
	},
	{
		re: regexp.MustCompile(`^\s*(#{1,6})\s+(.*)$`),
		extract: func(m []string) parsedLine {
			return parsedLine{kind: lineHeading, level: len(m[1]), text: m[2]}
		},
	},
}

func classify(line string) parsedLine {
	for _, r := range lineRules {
		if m := r.re.FindStringSubmatch(line); m != nil {
			return r.extract(m)
		}
	}
	return parsedLine{kind: linePlain, text: line}
}

// Parse converts raw multi-line text into a Model. Parsing is total:
// any non-blank line that matches no bullet or heading form becomes
// the title if none is set yet, otherwise it starts a new section.
// Checked items are discarded. Sections left without items are
// filtered from the result.
func Parse(src string) Model {
	var (
		title    string
		sections []Section
		current  *Section
	)

	startSection := func(name string) {
		sections = append(sections, Section{Name: name})
		current = &sections[len(sections)-1]
	}

	for _, raw := range strings.Split(src, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		ln := classify(raw)
		text := strings.TrimSpace(ln.text)

		switch ln.kind {
		case lineChecked:
			// completed, never rendered

		case lineUnchecked:
			if text == "" {
				continue
			}
			if current == nil {
				startSection(implicitSection)
			}
			current.Items = append(current.Items, text)

		case lineHeading:
			if ln.level == 1 && title == "" {
				title = text
				continue
			}
			startSection(text)

		case linePlain:
			if title == "" {
				title = text
				continue
			}
			startSection(text)
		}
	}

	if title == "" {
		title = DefaultTitle
	}

	kept := make([]Section, 0, len(sections))
	for _, s := range sections {
		if len(s.Items) > 0 {
			kept = append(kept, s)
		}
	}

	return Model{Title: title, Sections: kept}
}
