package fuzzy

import "sort"

// maxLengthDiff is the bucket-length tolerance used when collecting
// candidates from the index.
const maxLengthDiff = 3

// indexEntry pairs a dictionary word with its position in the snapshot, so
// candidate lists can be returned in dictionary order regardless of Go's
// randomized map iteration.
type indexEntry struct {
	word string
	pos  int
}

// index groups dictionary entries by the length and first rune of their
// normalized lowercase form, bounding the candidate set for a lookup to a
// handful of buckets instead of the whole dictionary.
type index struct {
	byLengthAndRune map[int]map[rune][]indexEntry
	total           int
}

// buildIndex indexes every dictionary entry under exactly one
// (normalized length, normalized first rune) bucket.
func buildIndex(dictionary []string) *index {
	idx := &index{
		byLengthAndRune: make(map[int]map[rune][]indexEntry),
		total:           len(dictionary),
	}
	for pos, word := range dictionary {
		normalized := []rune(Normalize(word))
		length := len(normalized)
		first := '_'
		if length > 0 {
			first = normalized[0]
		}
		byRune, ok := idx.byLengthAndRune[length]
		if !ok {
			byRune = make(map[rune][]indexEntry)
			idx.byLengthAndRune[length] = byRune
		}
		byRune[first] = append(byRune[first], indexEntry{word: word, pos: pos})
	}
	return idx
}

// candidates returns the dictionary words whose bucket length is within
// [maxLengthDiff] of the normalized query's length and whose bucket rune
// either equals the query's first rune or is [Similar] to it. The result is
// deduplicated and sorted in dictionary order.
func (idx *index) candidates(queryNormalized string) []string {
	runes := []rune(queryNormalized)
	length := len(runes)
	first := '_'
	if length > 0 {
		first = runes[0]
	}

	var entries []indexEntry
	lo := length - maxLengthDiff
	if lo < 0 {
		lo = 0
	}
	for target := lo; target <= length+maxLengthDiff; target++ {
		byRune, ok := idx.byLengthAndRune[target]
		if !ok {
			continue
		}
		for bucketRune, words := range byRune {
			if bucketRune == first || Similar(first, bucketRune) {
				entries = append(entries, words...)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })

	out := make([]string, 0, len(entries))
	lastPos := -1
	for _, e := range entries {
		if e.pos == lastPos {
			continue
		}
		out = append(out, e.word)
		lastPos = e.pos
	}
	return out
}
