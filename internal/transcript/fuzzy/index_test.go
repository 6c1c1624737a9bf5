package fuzzy

import (
	"slices"
	"testing"
)

func TestIndex_CandidatesDictionaryOrder(t *testing.T) {
	t.Parallel()

	dict := []string{"Kaan", "Karl", "Kari", "Kara"}
	idx := buildIndex(dict)

	got := idx.candidates("kaan")
	if !slices.Equal(got, dict) {
		t.Errorf("candidates(%q) = %v, want dictionary order %v", "kaan", got, dict)
	}
}

func TestIndex_LengthWindow(t *testing.T) {
	t.Parallel()

	dict := []string{"Kai", "Katarina", "Kaan"}
	idx := buildIndex(dict)

	// A 4-rune query reaches lengths 1 through 7: "Katarina" (8) is out.
	got := idx.candidates("kaan")
	if slices.Contains(got, "Katarina") {
		t.Errorf("candidates(%q) = %v, want %q excluded by length window", "kaan", got, "Katarina")
	}
	if !slices.Contains(got, "Kai") || !slices.Contains(got, "Kaan") {
		t.Errorf("candidates(%q) = %v, want both %q and %q", "kaan", got, "Kai", "Kaan")
	}
}

func TestIndex_SimilarFirstRune(t *testing.T) {
	t.Parallel()

	dict := []string{"Catalkaya", "Bergmann"}
	idx := buildIndex(dict)

	// k and c are confusable, so a k-initial query reaches the c bucket.
	got := idx.candidates("kethalkaya")
	if !slices.Contains(got, "Catalkaya") {
		t.Errorf("candidates(%q) = %v, want %q via confusable first rune", "kethalkaya", got, "Catalkaya")
	}
	if slices.Contains(got, "Bergmann") {
		t.Errorf("candidates(%q) = %v, want %q excluded", "kethalkaya", got, "Bergmann")
	}
}

func TestIndex_BucketsByNormalizedForm(t *testing.T) {
	t.Parallel()

	// "Ødegaard" normalizes to "odegaard": an o-initial 8-rune query must
	// find it even though the raw entry starts with a non-ASCII rune.
	dict := []string{"Ødegaard"}
	idx := buildIndex(dict)

	got := idx.candidates("odegard")
	if !slices.Contains(got, "Ødegaard") {
		t.Errorf("candidates(%q) = %v, want %q via normalized bucket", "odegard", got, "Ødegaard")
	}
}

func TestIndex_EmptyQuery(t *testing.T) {
	t.Parallel()

	idx := buildIndex([]string{"Kaan", "Jo"})
	// Nothing sensible to return, but it must not panic.
	got := idx.candidates("")
	for _, w := range got {
		if len([]rune(Normalize(w))) > maxLengthDiff {
			t.Errorf("candidates(\"\") returned %q, outside the length window", w)
		}
	}
}
