// Package orthography implements the English spelling-change rules
// applied when an Attached suffix/prefix joins to a stem
// (AttachedType.ApplyOrthography in package translation).
package orthography

import "regexp"

// rule is a precompiled pattern tried against the stem and suffix joined
// by the sentinel '\x00' byte (which cannot otherwise appear in English
// text), plus its replacement template. Rules are tried in declaration
// order; the first match wins.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules is the fixed orthography table, built once at package init.
// It is intentionally small and linear-scanned; see spec.md §4.4 and §9.
var rules = []rule{
	// fairy + s -> fairies (consonant+y pluralizes to -ies, not -is)
	{
		regexp.MustCompile(`^(.+[bcdfghjklmnpqrstvwxz])y\x00s$`),
		"${1}ies",
	},
	// try + ed -> tried (y -> i before any other suffix not itself starting with i)
	{
		regexp.MustCompile(`^(.+[bcdfghjklmnpqrstvwxz])y\x00([^i].*|)$`),
		"${1}i${2}",
	},
	// die + ing -> dying, tie + ing -> tying
	{
		regexp.MustCompile(`^(.+)ie\x00ing$`),
		"${1}ying",
	},
	// make + ing -> making (silent e drops before a vowel suffix)
	{
		regexp.MustCompile(`^(.+[^aeiou])e\x00([aeiouy].*)$`),
		"${1}${2}",
	},
	// stop + ing -> stopping (a one-syllable CVC stem doubles its final
	// consonant before a vowel suffix; longer stems such as "model" do not)
	{
		regexp.MustCompile(`^([^aeiou]*[^aeiouwxy])([aeiou])([bcdfgklmnprtvz])\x00([aeiouy].*)$`),
		"${1}${2}${3}${3}${4}",
	},
}

// Apply joins stem and suffix using the orthography rule table. If no
// rule matches, stem and suffix are concatenated verbatim.
func Apply(stem, suffix string) string {
	joined := stem + "\x00" + suffix
	for _, r := range rules {
		if r.pattern.MatchString(joined) {
			return r.pattern.ReplaceAllString(joined, r.replacement)
		}
	}
	return stem + suffix
}
