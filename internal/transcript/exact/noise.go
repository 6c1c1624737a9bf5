package exact

import (
	"strings"
	"unicode"
)

// NormalizeNoise rewrites character-level speech-to-text artifacts before any
// dictionary processing: "n0" → "no", "rn" → "m" and "cl" → "d" at word
// boundaries, and the digits 0/1 → o/l when they appear inside words.
//
// The transform touches characters outside dictionary words, so it is not
// part of the default pipeline; callers opt in explicitly.
func NormalizeNoise(text string) string {
	runes := []rune(text)
	n := len(runes)
	var b strings.Builder
	b.Grow(len(text))

	at := func(i int) (rune, bool) {
		if i < 0 || i >= n {
			return 0, false
		}
		return runes[i], true
	}
	isLetterAt := func(i int) bool {
		r, ok := at(i)
		return ok && unicode.IsLetter(r)
	}
	isDigitAt := func(i int) bool {
		r, ok := at(i)
		return ok && unicode.IsDigit(r)
	}

	for i := 0; i < n; i++ {
		r := runes[i]

		// "n0" → "no", unless the 0 starts a longer number ("n0123").
		if r == 'n' && i+1 < n && runes[i+1] == '0' && !isDigitAt(i+2) {
			b.WriteString("no")
			i++
			continue
		}

		// "rn" → "m" at word boundaries or between letters.
		if r == 'r' && i+1 < n && runes[i+1] == 'n' {
			boundary := !isLetterAt(i-1) || !isLetterAt(i+2)
			between := isLetterAt(i-1) && isLetterAt(i+2)
			if boundary || between {
				b.WriteRune('m')
				i++
				continue
			}
		}

		// "cl" → "d" only at word boundaries.
		if r == 'c' && i+1 < n && runes[i+1] == 'l' {
			if !isLetterAt(i-1) || !isLetterAt(i+2) {
				b.WriteRune('d')
				i++
				continue
			}
		}

		switch r {
		case '0':
			// A zero next to letters is a misread 'o'.
			if isLetterAt(i-1) || isLetterAt(i+1) {
				b.WriteRune('o')
				continue
			}
		case '1':
			// A one in word context (but not inside a number) is a misread 'l'.
			inWord := isLetterAt(i-1) || isLetterAt(i+1)
			inNumber := isDigitAt(i-1) && isDigitAt(i+1)
			if inWord && !inNumber {
				b.WriteRune('l')
				continue
			}
		}

		b.WriteRune(r)
	}
	return b.String()
}
