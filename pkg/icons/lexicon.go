// Package icons maps item text to icon keys using a curated lexicon
// of canonical keys and synonyms.
package icons

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AtreyuArtax/printlist/pkg/textnorm"
)

// Lexicon is the immutable icon vocabulary: an optional whitelist of
// canonical keys plus a synonym table mapping alternate phrases to
// canonical keys. A zero Lexicon matches through synonyms only when
// they exist and otherwise degrades to direct keys.
type Lexicon struct {
	canonical map[string]struct{}
	synonyms  map[string]string
}

// lexiconFile is the on-disk JSON shape. Both fields are optional.
type lexiconFile struct {
	Canonical []string          `json:"canonical"`
	Synonyms  map[string]string `json:"synonyms"`
}

// NewLexicon builds a Lexicon from raw key and synonym lists. Phrases
// may use underscores in place of spaces; all entries are normalized
// before use.
func NewLexicon(canonical []string, synonyms map[string]string) Lexicon {
	lex := Lexicon{
		canonical: make(map[string]struct{}, len(canonical)),
		synonyms:  make(map[string]string, len(synonyms)),
	}
	for _, k := range canonical {
		if ck := normalizePhrase(k); ck != "" {
			lex.canonical[ck] = struct{}{}
		}
	}
	for phrase, key := range synonyms {
		p := normalizePhrase(phrase)
		k := normalizePhrase(key)
		if p != "" && k != "" {
			lex.synonyms[p] = k
		}
	}
	return lex
}

// LoadLexicon reads a lexicon JSON file. Callers that treat the
// lexicon as optional should use LoadLexiconOrEmpty instead.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("icons: read lexicon: %w", err)
	}
	var f lexiconFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Lexicon{}, fmt.Errorf("icons: parse lexicon: %w", err)
	}
	return NewLexicon(f.Canonical, f.Synonyms), nil
}

// LoadLexiconOrEmpty loads the lexicon at path, degrading to an empty
// lexicon (no icons) on any failure. The error is returned for
// optional reporting; it is never fatal.
func LoadLexiconOrEmpty(path string) (Lexicon, error) {
	if path == "" {
		return Lexicon{}, nil
	}
	lex, err := LoadLexicon(path)
	if err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

// Synonyms returns a copy of the synonym table, for display.
func (l Lexicon) Synonyms() map[string]string {
	out := make(map[string]string, len(l.synonyms))
	for k, v := range l.synonyms {
		out[k] = v
	}
	return out
}

// Canonical returns a copy of the canonical keys, unordered.
func (l Lexicon) Canonical() []string {
	out := make([]string, 0, len(l.canonical))
	for k := range l.canonical {
		out = append(out, k)
	}
	return out
}

// Empty reports whether the lexicon carries no vocabulary at all.
func (l Lexicon) Empty() bool {
	return len(l.canonical) == 0 && len(l.synonyms) == 0
}

func (l Lexicon) synonym(phrase string) (string, bool) {
	v, ok := l.synonyms[phrase]
	return v, ok
}

// direct reports whether key is a known canonical key. With no
// whitelist configured there are no known keys; the matcher then
// returns the full singular phrase ungated instead.
func (l Lexicon) direct(key string) bool {
	if len(l.canonical) == 0 {
		return false
	}
	_, ok := l.canonical[key]
	return ok
}

// gated reports whether the whitelist is enforced.
func (l Lexicon) gated() bool {
	return len(l.canonical) > 0
}

func normalizePhrase(p string) string {
	return textnorm.Normalize(strings.ReplaceAll(p, "_", " "))
}
