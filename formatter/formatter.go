// Package formatter renders a flattened sequence of translation.TextAtom
// values into a single string, tracking spacing and capitalization state
// across atoms and applying orthography rules at Attached boundaries.
package formatter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/stenoproject/plojo/orthography"
	"github.com/stenoproject/plojo/translation"
)

// numberTranslationRegexp matches a translation that is only digits or the
// center dash; such strokes are glued. A lone "-" can never actually occur
// since it is not a valid stroke, but the pattern still accepts it.
var numberTranslationRegexp = regexp.MustCompile(`^[0-9\-]+$`)

// numbersOnlyRegexp matches a translation that is only digits.
var numbersOnlyRegexp = regexp.MustCompile(`^[0-9]+$`)

const space = ' '

// state is carried forward across atoms while building the rendered string.
type state struct {
	suppressSpace   bool
	forceCapitalize bool
	prevIsGlued     bool
	forceSameCase   *bool
}

// Format converts atoms into their string representation, inserting spaces
// between words and applying text actions. When spaceAfter is true, a
// trailing space is appended instead of a leading one.
func Format(atoms []translation.TextAtom, spaceAfter bool) string {
	var st state
	buf := ""

	for _, atom := range atoms {
		var nextWord string
		var next state

		switch a := atom.(type) {
		case translation.Lit:
			nextWord = a.Text
			if numbersOnlyRegexp.MatchString(nextWord) {
				next.prevIsGlued = true
				if st.prevIsGlued {
					st.suppressSpace = true
				}
			}
		case translation.UnknownStroke:
			raw := a.Stroke.Raw()
			if numberTranslationRegexp.MatchString(raw) {
				nextWord = strings.ReplaceAll(raw, "-", "")
				next.prevIsGlued = true
				if st.prevIsGlued {
					st.suppressSpace = true
				}
			} else {
				nextWord = raw
			}
		case translation.Attached:
			nextWord = a.Text
			if a.JoinedNext {
				next.suppressSpace = true
			}
			if a.CarryCapitalization {
				next.forceCapitalize = st.forceCapitalize
				next.forceSameCase = st.forceSameCase
				st.forceCapitalize = false
			}

			if !st.suppressSpace {
				switch a.JoinedPrev {
				case translation.DoNotAttach:
					// normal spacing
				case translation.AttachOnly:
					st.suppressSpace = true
				case translation.ApplyOrthography:
					st.suppressSpace = true
					built := buf
					index := lastNonAlphaBoundary(built)
					if index < len(built) {
						newWord := orthography.Apply(built[index:], a.Text)
						buf = built[:index] + newWord
					} else {
						buf = built + a.Text
					}
					st = next
					continue
				default:
					panic("formatter: unknown AttachedType")
				}
			}
		case translation.Glued:
			nextWord = a.Text
			next.prevIsGlued = true
			if st.prevIsGlued {
				st.suppressSpace = true
			}
		case translation.StateActionAtom:
			switch sa := a.Action.(type) {
			case translation.ForceCapitalize:
				st.forceCapitalize = true
			case translation.SameCase:
				upper := sa.Upper
				st.forceSameCase = &upper
			case translation.ClearState:
				st = state{}
			default:
				panic("formatter: unknown StateActionKind")
			}
			continue
		case translation.TextActionAtom:
			buf = performTextAction(buf, a.Action)
			continue
		default:
			panic("formatter: unknown TextAtom")
		}

		if !st.suppressSpace {
			buf += string(space)
		}

		word := nextWord
		if st.forceCapitalize {
			word = changeFirstLetter(word)
		}
		if st.forceSameCase != nil {
			if *st.forceSameCase {
				word = strings.ToUpper(word)
			} else {
				word = strings.ToLower(word)
			}
		}
		buf += word

		st = next
	}

	if spaceAfter && buf != "" {
		if strings.HasPrefix(buf, string(space)) {
			buf = buf[len(string(space)):]
		}
		if !st.suppressSpace {
			buf += string(space)
		}
	}

	return buf
}

// changeFirstLetter forces the first rune of text to its Unicode uppercase
// form using Go's per-rune case mapping. Letters whose full uppercase form
// is more than one rune are not expanded: "ß" stays "ß", not "SS".
func changeFirstLetter(text string) string {
	if text == "" {
		return ""
	}
	r := []rune(text)
	first := strings.ToUpper(string(r[0]))
	return first + string(r[1:])
}

// lastNonAlphaBoundary returns the byte index just after the last
// non-alphabetic character in text, or 0 if there is none.
func lastNonAlphaBoundary(text string) int {
	idx := -1
	size := 0
	for i, r := range text {
		if !unicode.IsLetter(r) {
			idx = i
			size = len(string(r))
		}
	}
	if idx < 0 {
		return 0
	}
	return idx + size
}

// findLastWordSpace returns the byte index just after the last whitespace
// rune in text, or 0 if text has none.
func findLastWordSpace(text string) int {
	idx := -1
	size := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			idx = i
			size = len(string(r))
		}
	}
	if idx < 0 {
		return 0
	}
	return idx + size
}

// isWordChar reports whether r is considered part of a word for the
// purposes of findLastWord: alphanumeric, '-', or '_'.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// findLastWord returns the byte index of the start of the trailing word in
// text (a maximal run of isWordChar runes), or 0 if the whole string is a
// word.
func findLastWord(text string) int {
	idx := -1
	size := 0
	for i, r := range text {
		if !isWordChar(r) {
			idx = i
			size = len(string(r))
		}
	}
	if idx < 0 {
		return 0
	}
	return idx + size
}

func performTextAction(text string, action translation.TextActionKind) string {
	switch a := action.(type) {
	case translation.SuppressSpacePrev:
		index := findLastWordSpace(text)
		if index > 0 && text[index-1:index] == " " {
			return text[:index-1] + text[index:]
		}
		return text
	case translation.CapitalizePrev:
		index := findLastWord(text)
		return text[:index] + changeFirstLetter(text[index:])
	case translation.SameCasePrev:
		index := findLastWord(text)
		word := text[index:]
		if a.Upper {
			word = strings.ToUpper(word)
		} else {
			word = strings.ToLower(word)
		}
		return text[:index] + word
	default:
		panic("formatter: unknown TextActionKind")
	}
}
