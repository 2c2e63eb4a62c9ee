// Package stroke implements the canonical stenotype chord value type.
//
// A Stroke is the set of keys pressed simultaneously on a steno keyboard,
// canonicalized to a string over the fixed key order
// "# S T K P W H R A O * E U F R P B L G T S D Z". Equality, hashing and
// ordering are all by this canonical string, so Stroke is simply a string
// with a constructor that does the normalization.
package stroke

import (
	"regexp"
	"strings"
)

// Stroke is a canonical, hashable representation of a single chord.
type Stroke string

// slot describes one position in the fixed steno key order. Both a
// letter and, for the keys that double as the number bar, a digit may
// select the same physical key.
type slot struct {
	letter byte
	digit  byte // 0 if this slot has no digit alias
}

// keyOrder is the steno keyboard key order from spec.md: "#", the left
// bank, the vowel cluster, and the right bank. Some letters (R, P, T, S)
// appear on both banks; they are distinct physical keys distinguished
// only by their position in this order.
var keyOrder = []slot{
	{'#', 0},
	{'S', '1'},
	{'T', '2'},
	{'K', 0},
	{'P', '3'},
	{'W', 0},
	{'H', '4'},
	{'R', 0},
	{'A', '5'},
	{'O', '0'},
	{'*', 0},
	{'E', 0},
	{'U', 0},
	{'F', '6'},
	{'R', 0},
	{'P', '7'},
	{'B', 0},
	{'L', '8'},
	{'G', 0},
	{'T', '9'},
	{'S', 0},
	{'D', 0},
	{'Z', 0},
}

const vowelStart = 8 // index of 'A', first slot of the center/vowel cluster
const vowelEnd = 12  // index of 'U', last slot of the center/vowel cluster
const rightBankStart = 13

// New parses a raw stroke string and returns its canonical form. Unknown
// characters are silently dropped; a key that repeats (by canonicalizing
// to the same slot twice) is collapsed to a single occurrence. A literal
// '-' in the input forces whatever follows it to be read from the right
// bank, which is required to address right-bank keys whose letter also
// exists on the left bank (e.g. "-S", "-T", "-P", "-R").
func New(raw string) Stroke {
	present := make([]bool, len(keyOrder))
	digitUsed := make([]bool, len(keyOrder))

	pointer := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '-' {
			if pointer < rightBankStart {
				pointer = rightBankStart
			}
			continue
		}
		if c == '#' {
			present[0] = true
			continue
		}
		upper := toUpper(c)
		isDigit := c >= '0' && c <= '9'

		for s := pointer; s < len(keyOrder); s++ {
			k := keyOrder[s]
			if (isDigit && k.digit == c) || (!isDigit && k.letter == upper) {
				present[s] = true
				if isDigit {
					digitUsed[s] = true
				}
				pointer = s + 1
				break
			}
		}
	}

	hasVowel := false
	for s := vowelStart; s <= vowelEnd; s++ {
		if present[s] {
			hasVowel = true
			break
		}
	}
	hasRight := false
	for s := rightBankStart; s < len(keyOrder); s++ {
		if present[s] {
			hasRight = true
			break
		}
	}

	var b strings.Builder
	dashed := false
	for s := range keyOrder {
		if !present[s] {
			continue
		}
		if s >= rightBankStart && !hasVowel && hasRight && !dashed {
			b.WriteByte('-')
			dashed = true
		}
		if digitUsed[s] {
			b.WriteByte(keyOrder[s].digit)
		} else {
			b.WriteByte(keyOrder[s].letter)
		}
	}
	return Stroke(b.String())
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Raw returns the canonical string form of the stroke.
func (s Stroke) Raw() string {
	return string(s)
}

// IsUndo reports whether this stroke is the star-only undo chord.
func (s Stroke) IsUndo() bool {
	return string(s) == "*"
}

var numberTranslationRegexp = regexp.MustCompile(`^[0-9\-]+$`)
var numbersOnlyRegexp = regexp.MustCompile(`^[0-9]+$`)

// IsNumber reports whether the canonical form contains only digits and/or
// the center hyphen.
func (s Stroke) IsNumber() bool {
	return numberTranslationRegexp.MatchString(string(s))
}

// IsDigits reports whether the canonical form contains only digits.
func (s Stroke) IsDigits() bool {
	return numbersOnlyRegexp.MatchString(string(s))
}

// Less orders two strokes by their canonical string, for use with
// sort.Slice over []Stroke.
func Less(a, b Stroke) bool {
	return string(a) < string(b)
}

// JoinKey builds the `/`-joined dictionary key for a sequence of strokes.
func JoinKey(strokes []Stroke) string {
	parts := make([]string, len(strokes))
	for i, s := range strokes {
		parts[i] = string(s)
	}
	return strings.Join(parts, "/")
}
