// Package dictionary builds an immutable stroke-sequence-to-translation
// mapping from a list of raw JSON dictionary strings, and parses each
// value's Plover meta-syntax into a translation.Translation.
package dictionary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translation"
)

// Dictionary is an immutable mapping from a canonical, "/"-joined
// stroke-sequence key to the Translation it produces.
type Dictionary struct {
	entries map[string]translation.Translation
}

// Source pairs one raw JSON dictionary document with the name used to
// identify it in any ParseError (typically its file path).
type Source struct {
	Name string
	JSON string
}

// New builds a Dictionary from an ordered list of sources. Within a
// source, stroke keys are canonicalized before being stored. Across
// sources, later ones overwrite entries of earlier ones for keys they
// share; entries unique to an earlier source are kept.
func New(sources []Source) (*Dictionary, error) {
	entries := make(map[string]translation.Translation)
	var errs ParseErrors

	for _, src := range sources {
		var raw map[string]string
		if err := json.Unmarshal([]byte(src.JSON), &raw); err != nil {
			errs = append(errs, &ParseError{Path: src.Name, Reason: "invalid JSON: " + err.Error()})
			continue
		}

		for rawKey, rawValue := range raw {
			key, err := canonicalKey(rawKey)
			if err != nil {
				errs = append(errs, &ParseError{Path: src.Name, Reason: err.Error()})
				continue
			}

			t, err := parseValue(rawValue)
			if err != nil {
				var pe *ParseError
				if as, ok := err.(*ParseError); ok {
					as.Path = src.Name
					pe = as
				} else {
					pe = &ParseError{Path: src.Name, Reason: err.Error()}
				}
				errs = append(errs, pe)
				continue
			}

			entries[key] = t
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Dictionary{entries: entries}, nil
}

// canonicalKey re-canonicalizes a "/"-joined dictionary key so that
// lookups are insensitive to cosmetic differences (e.g. key ordering
// within a stroke) between the file and the runtime's own Stroke.New.
func canonicalKey(rawKey string) (string, error) {
	if rawKey == "" {
		return "", fmt.Errorf("empty stroke key")
	}
	parts := strings.Split(rawKey, "/")
	strokes := make([]stroke.Stroke, len(parts))
	for i, p := range parts {
		strokes[i] = stroke.New(p)
	}
	return stroke.JoinKey(strokes), nil
}

// Lookup returns the Translation stored for the exact stroke sequence, if
// any. It is an O(1) hash lookup keyed on the canonical, "/"-joined form
// of strokes.
func (d *Dictionary) Lookup(strokes []stroke.Stroke) (translation.Translation, bool) {
	t, ok := d.entries[stroke.JoinKey(strokes)]
	return t, ok
}

// Len reports the number of distinct stroke-sequence entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// MultiStrokeCount reports how many entries are keyed by more than one
// stroke.
func (d *Dictionary) MultiStrokeCount() int {
	count := 0
	for key := range d.entries {
		if strings.Contains(key, "/") {
			count++
		}
	}
	return count
}

// MaxStrokeLen reports the length, in strokes, of the longest key in
// the dictionary.
func (d *Dictionary) MaxStrokeLen() int {
	max := 0
	for key := range d.entries {
		n := strings.Count(key, "/") + 1
		if n > max {
			max = n
		}
	}
	return max
}
