package transcript

import "unicode"

// preserveTranscriptionCase reports whether the transcribed token's casing
// pattern should be reapplied onto the dictionary word. Only unambiguous
// patterns qualify: ALL-CAPS, or Title-Case on tokens longer than three
// runes. Everything else takes the dictionary entry's own casing.
func preserveTranscriptionCase(transcribed string) bool {
	runes := []rune(transcribed)
	if len(runes) == 0 {
		return false
	}

	allCaps := true
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allCaps = false
			break
		}
	}
	if allCaps {
		return true
	}

	if len(runes) <= 3 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// applyCasePattern transfers the transcribed token's letter-by-letter casing
// onto the dictionary word. Positions beyond the transcribed token's length
// keep the dictionary word's own casing.
func applyCasePattern(dictionaryWord, transcribed string) string {
	dict := []rune(dictionaryWord)
	trans := []rune(transcribed)

	out := make([]rune, len(dict))
	for i, r := range dict {
		if i >= len(trans) {
			out[i] = r
			continue
		}
		if unicode.IsUpper(trans[i]) {
			out[i] = unicode.ToUpper(r)
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
