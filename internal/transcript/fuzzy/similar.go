package fuzzy

// similarPairs lists the unordered rune pairs treated as confusable. The
// groups cover the ways a spoken name gets mangled between microphone and
// transcript: fat-fingered keyboard neighbours (for typed dictionaries),
// phonetic confusions, vowel drift, weak consonants, visual look-alikes, and
// diacritic base forms.
var similarPairs = [][2]rune{
	// Keyboard proximity.
	{'i', 'j'}, {'u', 'v'}, {'n', 'm'}, {'q', 'w'}, {'e', 'r'}, {'t', 'y'},
	{'a', 's'}, {'d', 'f'}, {'g', 'h'}, {'z', 'x'}, {'c', 'v'}, {'b', 'n'},

	// Phonetic confusions.
	{'t', 'c'}, {'w', 'v'}, {'k', 'c'}, {'p', 'b'}, {'d', 't'}, {'g', 'k'},
	{'f', 'v'}, {'s', 'z'}, {'j', 'y'}, {'x', 'k'}, {'q', 'k'},

	// Vowel drift: any vowel may be heard as any other.
	{'a', 'e'}, {'a', 'i'}, {'a', 'o'}, {'a', 'u'},
	{'e', 'i'}, {'e', 'o'}, {'e', 'u'},
	{'i', 'o'}, {'i', 'u'},
	{'o', 'u'},
	{'y', 'i'},

	// Weak or silent consonants confused with vowels, liquid consonants.
	{'h', 'a'}, {'h', 'e'}, {'h', 'i'}, {'l', 'r'}, {'l', 'k'},

	// Visual similarity (OCR-style confusions surviving in some pipelines).
	{'o', '0'}, {'l', '1'}, {'s', '5'}, {'i', '1'}, {'o', 'q'}, {'r', 'n'},

	// Diacritic base forms.
	{'ø', 'o'}, {'å', 'a'}, {'æ', 'a'}, {'ä', 'a'}, {'ö', 'o'}, {'ü', 'u'},
}

var similar = func() map[[2]rune]struct{} {
	m := make(map[[2]rune]struct{}, len(similarPairs)*2)
	for _, p := range similarPairs {
		m[[2]rune{p[0], p[1]}] = struct{}{}
		m[[2]rune{p[1], p[0]}] = struct{}{}
	}
	return m
}()

// Similar reports whether two runes are confusable. It is symmetric and
// reflexivity is not implied: Similar(r, r) is false, equality is handled
// separately by callers.
func Similar(a, b rune) bool {
	_, ok := similar[[2]rune{a, b}]
	return ok
}
