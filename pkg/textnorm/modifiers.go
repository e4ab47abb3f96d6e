package textnorm

import "strings"

// descriptors are standalone tokens that describe an item without
// identifying it: colors, ripeness and preparation states, size and
// quantity words, and packaging nouns.
var descriptors = map[string]struct{}{
	// colors
	"red": {}, "green": {}, "yellow": {}, "orange": {}, "purple": {},
	"white": {}, "black": {}, "brown": {}, "blue": {}, "pink": {},
	// ripeness / state
	"ripe": {}, "unripe": {}, "overripe": {}, "fresh": {}, "frozen": {},
	"raw": {}, "cooked": {}, "dried": {}, "organic": {},
	// size / quantity
	"small": {}, "medium": {}, "large": {}, "big": {}, "little": {},
	"mini": {}, "jumbo": {}, "extra": {}, "half": {}, "whole": {},
	"dozen": {}, "few": {}, "some": {},
	// packaging
	"bag": {}, "bags": {}, "box": {}, "boxes": {}, "can": {}, "cans": {},
	"jar": {}, "jars": {}, "bottle": {}, "bottles": {}, "pack": {},
	"packs": {}, "carton": {}, "cartons": {}, "bunch": {}, "bunches": {},
	"tub": {}, "tubs": {}, "loaf": {}, "loaves": {},
	// units
	"lb": {}, "lbs": {}, "oz": {}, "kg": {}, "g": {}, "ml": {}, "l": {},
}

// StripModifiers removes standalone descriptor tokens and bare
// quantities ("2", "2x") from already-normalized text. If stripping
// would leave nothing, the input is returned unchanged.
func StripModifiers(text string) string {
	fields := strings.Fields(text)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := descriptors[f]; ok {
			continue
		}
		if isQuantity(f) {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return text
	}
	return strings.Join(kept, " ")
}

// isQuantity reports whether tok is a bare count like "2", "12", or "2x".
func isQuantity(tok string) bool {
	if tok == "" {
		return false
	}
	digits := 0
	for i, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == 'x' && i == len(tok)-1 && digits > 0:
			// trailing multiplier
		case r == '.':
			// decimal point
		default:
			return false
		}
	}
	return digits > 0
}
