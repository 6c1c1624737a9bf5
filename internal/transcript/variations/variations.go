// Package variations corrects universal speech-to-text mishearings: technical
// terms and widely used service names that recognizers get wrong for every
// speaker, independent of any user dictionary. User-specific names are out of
// scope here; those belong to the dictionary-driven layers.
package variations

import (
	"strings"
	"unicode"

	"github.com/hearsay-tools/hearsay/internal/transcript/commonwords"
)

// known maps lowercase mishearings to their correct form. Values that differ
// only in casing ("github" → "GitHub") fix capitalization for tokens the
// recognizer emits in lowercase.
var known = map[string]string{
	// Technical terms.
	"javascrypt": "javascript",
	"typescrypt": "typescript",
	"reakt":      "react",
	"paython":    "python",
	"vishual":    "visual",
	"sequel":     "sql",

	// Service names.
	"github":    "GitHub",
	"gethub":    "github",
	"superbase": "supabase",
	"firebase":  "Firebase",

	// Acronyms.
	"ai":  "AI",
	"api": "API",
	"ui":  "UI",
	"ux":  "UX",
}

// clickNext and clickPrev are the neighbouring words that mark a UI context
// for the "dick" → "click" mishearing. Outside such a context the token is
// left alone.
var clickNext = map[string]bool{
	"on": true, "the": true, "here": true, "this": true, "that": true,
	"button": true, "link": true, "icon": true,
}

var clickPrev = map[string]bool{
	"please": true, "just": true, "then": true, "and": true,
	"to": true, "double": true,
}

// Lookup returns the corrected form for a known mishearing, with the
// original token's casing pattern applied. The second return reports whether
// word is a known mishearing.
func Lookup(word string) (string, bool) {
	correct, ok := known[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	return applyOriginalCasing(correct, word), true
}

// LookupInContext is [Lookup] plus the context-gated rules. prev and next are
// the neighbouring words in the text, empty when there is none.
func LookupInContext(word, prev, next string) (string, bool) {
	if strings.ToLower(word) == "dick" {
		if clickNext[strings.ToLower(next)] || clickPrev[strings.ToLower(prev)] {
			return applyOriginalCasing("click", word), true
		}
		return "", false
	}
	return Lookup(word)
}

// ShouldCheck reports whether the variation table should be consulted for
// word at all. Very short words and common English words are excluded as
// false-positive risks, and words already present in the dictionary need no
// correction.
func ShouldCheck(word string, inDictionary bool) bool {
	if inDictionary {
		return false
	}
	if len([]rune(word)) < 4 {
		return false
	}
	return !commonwords.IsCommon(word)
}

// applyOriginalCasing transfers the casing pattern of original onto correct:
// ALL-CAPS stays all-caps, a leading capital stays a leading capital, and
// anything else takes the table's form verbatim.
func applyOriginalCasing(correct, original string) string {
	runes := []rune(original)
	if len(runes) == 0 {
		return correct
	}

	allCaps := true
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allCaps = false
			break
		}
	}
	if allCaps {
		return strings.ToUpper(correct)
	}

	if unicode.IsUpper(runes[0]) {
		cr := []rune(strings.ToLower(correct))
		if len(cr) > 0 {
			cr[0] = unicode.ToUpper(cr[0])
		}
		return string(cr)
	}

	return correct
}
