// Package textnorm canonicalizes item text for icon matching.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	annotations = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	possessive  = regexp.MustCompile(`['’]s\b`)
	whitespace  = regexp.MustCompile(`\s+`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize canonicalizes raw item text: parenthesized and bracketed
// annotations are removed, possessives stripped, the result lower-cased
// and de-accented, separators converted to spaces, punctuation other
// than hyphens dropped, and whitespace collapsed.
func Normalize(text string) string {
	s := annotations.ReplaceAllString(text, " ")
	s = possessive.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '_' || r == '/' || r == '\\':
			b.WriteRune(' ')
		case r == '-':
			b.WriteRune(r)
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(whitespace.ReplaceAllString(b.String(), " "))
}
