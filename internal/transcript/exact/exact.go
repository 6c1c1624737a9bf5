// Package exact implements the safe first correction layer: case-insensitive
// dictionary lookup plus a small set of ultra-conservative rewrite patterns
// for mishearings the fuzzy matcher would either miss or only catch at low
// confidence. Every rewrite must land exactly on a dictionary entry and pass
// a phonetic plausibility guard, so this layer produces no false positives
// on its own.
package exact

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/hearsay-tools/hearsay/internal/transcript/fuzzy"
)

// guardThreshold is the Jaro-Winkler floor for pattern rewrites whose
// phonetic codes do not overlap with the target entry. Matches the phonetic
// acceptance threshold used for ranked candidate selection.
const guardThreshold = 0.70

// vowelPatterns are Germanic/Nordic substitutions tried, in order, on
// capitalized tokens longer than six runes. Each is applied only when the
// result is a dictionary entry.
var vowelPatterns = [...][2]string{
	{"oi", "eu"},       // Schloining -> Schleuning
	{"ining", "euning"}, // Slining -> Sleuning
	{"oo", "ø"},        // Vindstool -> Vindstød
	{"ae", "ø"},
	{"oe", "ø"},
}

// droppedPrefixes are initial consonant clusters recognizers tend to drop
// from names.
var droppedPrefixes = [...]string{"Sch", "Schl", "Ch", "Th", "Ph"}

// doubledConsonants are consonants commonly doubled in names but transcribed
// single ("Mase" for "Masse").
var doubledConsonants = [...]rune{'s', 't', 'n', 'l', 'm', 'r'}

// Corrector performs exact and conservative-pattern dictionary lookups.
// It is read-only after construction and safe for concurrent use.
type Corrector struct {
	// words maps the lowercase form of each entry to its dictionary casing.
	words map[string]string
}

// New builds a [Corrector] from the dictionary. Entries are trimmed; empty
// entries are dropped. Later duplicates (case-insensitive) win, matching
// plain map semantics.
func New(dictionary []string) *Corrector {
	words := make(map[string]string, len(dictionary))
	for _, entry := range dictionary {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		words[strings.ToLower(trimmed)] = trimmed
	}
	return &Corrector{words: words}
}

// Size reports the number of distinct entries.
func (c *Corrector) Size() int { return len(c.words) }

// Contains reports whether word is a dictionary entry, case-insensitively.
func (c *Corrector) Contains(word string) bool {
	_, ok := c.words[strings.ToLower(word)]
	return ok
}

// Lookup returns the dictionary-cased entry for word when word is an exact
// case-insensitive match.
func (c *Corrector) Lookup(word string) (string, bool) {
	entry, ok := c.words[strings.ToLower(word)]
	return entry, ok
}

// Conservative tries the rewrite patterns on word and returns the matched
// dictionary entry when exactly one pattern chain lands on an entry that is
// also phonetically plausible for word. Words shorter than five runes are
// never rewritten.
func (c *Corrector) Conservative(word string) (string, bool) {
	rewritten := c.applyPatterns(word)
	if rewritten == word {
		return "", false
	}
	entry, ok := c.words[strings.ToLower(rewritten)]
	if !ok {
		return "", false
	}
	if !plausible(word, entry) {
		return "", false
	}
	return entry, true
}

// applyPatterns runs the conservative rewrite chain, mirroring the layering
// of the patterns: each stage operates on the output of the previous one and
// only commits a rewrite that is a dictionary entry.
func (c *Corrector) applyPatterns(word string) string {
	if len([]rune(word)) < 5 {
		return word
	}

	corrected := word

	// Trailing elongated vowel: "Supabaase" -> "Supabase".
	if strings.HasSuffix(corrected, "aase") && len([]rune(corrected)) > 5 {
		variant := strings.ReplaceAll(corrected, "aase", "ase")
		if c.Contains(variant) {
			corrected = variant
		}
	}

	// Germanic/Nordic vowel substitutions on capitalized names.
	if firstUpper(corrected) && len([]rune(corrected)) > 6 {
		for _, p := range vowelPatterns {
			if !strings.Contains(corrected, p[0]) {
				continue
			}
			variant := strings.ReplaceAll(corrected, p[0], p[1])
			if c.Contains(variant) {
				corrected = variant
				break
			}
		}
	}

	// Dropped initial clusters, alone and combined with vowel substitutions:
	// "Slining" -> "Schlining" -> "Schleuning".
	if firstUpper(corrected) && len([]rune(corrected)) >= 5 {
		for _, prefix := range droppedPrefixes {
			if c.Contains(prefix + corrected) {
				corrected = prefix + corrected
				break
			}
			for _, p := range [...][2]string{{"ining", "euning"}, {"oi", "eu"}} {
				if !strings.Contains(corrected, p[0]) {
					continue
				}
				combined := prefix + strings.ReplaceAll(corrected, p[0], p[1])
				if c.Contains(combined) {
					return combined
				}
			}
		}
	}

	// Singled double consonants: "Mase" -> "Masse".
	if firstUpper(corrected) && len([]rune(corrected)) >= 4 {
		for _, r := range doubledConsonants {
			single := string(r)
			double := single + single
			if !strings.Contains(corrected, single) || strings.Contains(corrected, double) {
				continue
			}
			variant := strings.ReplaceAll(corrected, single, double)
			if c.Contains(variant) {
				corrected = variant
				break
			}
		}
	}

	// Dropped vowel in "-pabase" terms: "Supbase" -> "Supabase".
	if strings.HasSuffix(corrected, "pbase") && !strings.HasSuffix(corrected, "abase") {
		variant := strings.ReplaceAll(corrected, "pbase", "pabase")
		if c.Contains(variant) {
			corrected = variant
		}
	}

	return corrected
}

// plausible reports whether entry is a phonetically believable correction of
// word: their Double Metaphone codes overlap, or their Jaro-Winkler
// similarity clears [guardThreshold]. Both are computed on diacritic-folded
// lowercase forms so Nordic entries compare on their ASCII skeletons.
func plausible(word, entry string) bool {
	w := fuzzy.Normalize(word)
	e := fuzzy.Normalize(entry)

	wp, ws := matchr.DoubleMetaphone(w)
	ep, es := matchr.DoubleMetaphone(e)
	if wp != "" && (wp == ep || wp == es) {
		return true
	}
	if ws != "" && (ws == ep || ws == es) {
		return true
	}

	return matchr.JaroWinkler(w, e, false) >= guardThreshold
}

func firstUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
