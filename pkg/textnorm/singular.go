package textnorm

import "strings"

// Singularize reduces a plural word to singular using ordered suffix
// rules only; there is no dictionary. Words ending in -ss or -us are
// left alone so "hummus" and "swiss" survive.
func Singularize(word string) string {
	switch {
	case len(word) > 3 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 3 && strings.HasSuffix(word, "oes"):
		return word[:len(word)-2]
	case hasAnySuffix(word, "ches", "shes", "xes", "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us"):
		return word
	case len(word) > 1 && strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if len(word) > len(s) && strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}
