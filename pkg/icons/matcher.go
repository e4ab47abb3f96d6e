package icons

import (
	"strings"

	"github.com/AtreyuArtax/printlist/pkg/textnorm"
)

// Matcher resolves item text to icon keys against one Lexicon. The
// lexicon is passed in at construction and never mutated, so a single
// Matcher is safe to share across a render.
type Matcher struct {
	lex Lexicon
}

// NewMatcher returns a Matcher over the given lexicon.
func NewMatcher(lex Lexicon) Matcher {
	return Matcher{lex: lex}
}

// MatchKey maps raw item text to a filename-safe icon key. Grocery
// phrasing puts the category noun last ("granny smith apples"), so
// after exact synonym and whole-phrase lookups it falls back to tail
// n-grams before scanning individual tokens. Returns false when no
// stage produces a key.
func (m Matcher) MatchKey(raw string) (string, bool) {
	cleaned := textnorm.Normalize(textnorm.StripModifiers(textnorm.Normalize(raw)))
	if cleaned == "" {
		return "", false
	}

	tokens := strings.Fields(cleaned)
	singular := make([]string, len(tokens))
	for i, tok := range tokens {
		singular[i] = textnorm.Singularize(tok)
	}
	fullSingular := strings.Join(singular, " ")

	// Exact synonym on the cleaned phrase or its singular form.
	if key, ok := m.lex.synonym(cleaned); ok {
		return fileKey(key), true
	}
	if key, ok := m.lex.synonym(fullSingular); ok {
		return fileKey(key), true
	}

	// Whole phrase as a direct key. Without a whitelist this always
	// succeeds; with one it only succeeds for members.
	if !m.lex.gated() {
		return fileKey(fullSingular), true
	}
	if m.lex.direct(fullSingular) {
		return fileKey(fullSingular), true
	}

	// Tail n-grams, longest first.
	for n := 3; n >= 1; n-- {
		if n > len(singular) {
			continue
		}
		gram := strings.Join(singular[len(singular)-n:], " ")
		if key, ok := m.lex.synonym(gram); ok {
			return fileKey(key), true
		}
		if m.lex.direct(gram) {
			return fileKey(gram), true
		}
	}

	// Any token in original order.
	for _, tok := range singular {
		if key, ok := m.lex.synonym(tok); ok {
			return fileKey(key), true
		}
		if m.lex.direct(tok) {
			return fileKey(tok), true
		}
	}

	return "", false
}

// fileKey converts a canonical phrase to its asset-name form.
func fileKey(phrase string) string {
	return strings.ReplaceAll(phrase, " ", "_")
}
