// Package lookup implements the greedy multi-stroke dictionary lookup: the
// longest run of strokes (up to a bounded window) that matches a single
// dictionary entry wins, left to right.
package lookup

import (
	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translation"
)

// maxTranslationStrokeLen bounds how many strokes a single lookup will
// combine, for performance: scanning the full Plover dictionary shows only
// a handful of entries need more than 7 strokes, none more than 10.
const maxTranslationStrokeLen = 15

// Dictionary is the subset of dictionary.Dictionary that lookup depends on.
type Dictionary interface {
	Lookup(strokes []stroke.Stroke) (translation.Translation, bool)
}

// Translate walks strokes left to right, greedily preferring the longest
// stroke run (bounded by maxTranslationStrokeLen) that has a dictionary
// entry. Strokes with no matching entry of any length become a
// Text{[]TextAtom{UnknownStroke}} translation.
func Translate(strokes []stroke.Stroke, dict Dictionary) []translation.Translation {
	var all []translation.Translation

	limit := func(start int) int {
		end := start + maxTranslationStrokeLen
		if end > len(strokes) {
			return len(strokes)
		}
		return end
	}

	start := 0
	for start < len(strokes) {
		found := false
		for end := limit(start) - 1; end >= start; end-- {
			if t, ok := dict.Lookup(strokes[start : end+1]); ok {
				all = append(all, t)
				start = end + 1
				found = true
				break
			}
		}
		if !found {
			all = append(all, translation.Text{
				Atoms: []translation.TextAtom{translation.UnknownStroke{Stroke: strokes[start]}},
			})
			start++
		}
	}

	return all
}
