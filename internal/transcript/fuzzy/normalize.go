package fuzzy

import (
	"strings"
	"unicode"
)

// diacritics maps accented runes to their ASCII folding. German umlauts take
// priority over the generic vowel foldings (ä → "ae", not "a") because user
// dictionaries frequently contain German surnames.
var diacritics = map[rune]string{
	// Nordic.
	'ø': "o", 'å': "a", 'æ': "ae",

	// German.
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss",

	// French.
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o",
	'ù': "u", 'ú': "u", 'û': "u",
	'ç': "c", 'ñ': "n",

	// Iberian.
	'ý': "y", 'ÿ': "y",

	// Eastern European.
	'š': "s", 'ž': "z", 'č': "c", 'ř': "r",
	'ď': "d", 'ť': "t", 'ň': "n", 'ľ': "l",
	'ă': "a", 'ș': "s", 'ț': "t",
}

// aggressiveRules is the ordered list of cluster foldings applied by
// [NormalizeAggressive]. Order matters: each rule runs one full
// left-to-right pass over the output of the previous rule.
var aggressiveRules = [...][2]string{
	// Consonant clusters.
	{"ts", "t"}, {"ck", "k"}, {"ph", "f"}, {"gh", "g"},
	{"kh", "k"}, {"th", "t"}, {"sh", "s"}, {"ch", "c"},
	// Vowel clusters.
	{"oo", "o"}, {"ee", "e"}, {"aa", "a"}, {"ii", "i"}, {"uu", "u"},
	// Weak-syllable foldings common in fast speech.
	{"ul", "al"}, {"el", "al"}, {"il", "al"},
}

// Normalize lowercases s and folds diacritics to their ASCII base forms
// ("Vindstød" → "vindstod", "Müller" → "mueller"). Runes without a folding
// pass through unchanged. Normalize is total: it never fails and never
// returns an empty string for non-empty input.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if folded, ok := diacritics[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeAggressive applies the cluster foldings of [aggressiveRules] to an
// already-normalized string ("katsulkaya" → "katalkaya", "phone" → "fone").
// It is only used by the fallback matcher: the foldings are far too lossy for
// primary matching but collapse exactly the confusions a speech recognizer
// makes on unfamiliar names.
func NormalizeAggressive(normalized string) string {
	s := normalized
	for _, rule := range aggressiveRules {
		s = strings.ReplaceAll(s, rule[0], rule[1])
	}
	return s
}
