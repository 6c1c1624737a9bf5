package transcript

import "unicode"

// token is a maximal run of letters in the input, with its byte offsets so
// corrections can be spliced back without disturbing surrounding punctuation
// or whitespace.
type token struct {
	word  string
	start int // byte offset of the first rune
	end   int // byte offset just past the last rune
}

// tokenize splits text into letter-run tokens. Digits, punctuation, and
// whitespace terminate a token and are never part of one.
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{word: text[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{word: text[start:], start: start, end: len(text)})
	}
	return tokens
}
