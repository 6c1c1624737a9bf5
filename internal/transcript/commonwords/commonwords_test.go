package commonwords_test

import (
	"testing"

	"github.com/hearsay-tools/hearsay/internal/transcript/commonwords"
)

func TestIsCommon(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"the", "and", "can", "con", "for", "with", "together"} {
		if !commonwords.IsCommon(w) {
			t.Errorf("IsCommon(%q) = false, want true", w)
		}
	}

	// Case-insensitive.
	for _, w := range []string{"THE", "And", "CAN"} {
		if !commonwords.IsCommon(w) {
			t.Errorf("IsCommon(%q) = false, want true", w)
		}
	}

	// Proper nouns and technical terms are not common words.
	for _, w := range []string{"Kaan", "Panjeet", "Schleuning", "Supabase", "Vindstød", "javascript"} {
		if commonwords.IsCommon(w) {
			t.Errorf("IsCommon(%q) = true, want false", w)
		}
	}
}

func TestIsProtected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"a", true},   // single letter
		{"to", true},  // two letters
		{"øl", true},  // two runes, multi-byte
		{"can", true}, // common word
		{"the", true},
		{"CAN", true},
		{"Kaan", false},
		{"Schleuning", false},
		{"xyz", false}, // three letters, not common
	}
	for _, tt := range tests {
		if got := commonwords.IsProtected(tt.word); got != tt.want {
			t.Errorf("IsProtected(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
