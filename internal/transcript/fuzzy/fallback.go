package fuzzy

// Fallback scoring constants. The fallback's heuristics are far more
// permissive than the primary matcher, so its acceptance floor is fixed and
// deliberately independent of the caller's sensitivity setting.
const (
	fallbackMinLength      = 6
	fallbackFloor          = 0.35
	substringAcceptMin     = 0.7
	substringScoreWeight   = 0.85
	phoneticScoreWeight    = 0.8
	phoneticDistanceFactor = 0.6
)

// substringSimilarity blends longest-common-subsequence ratio (60%) with
// trigram Jaccard overlap (40%). The LCS counts a step as a match when the
// runes are equal or [Similar], so "kethalkaya" and "catalkaya" share almost
// their full length.
func substringSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	avgLen := float64(len(ra)+len(rb)) / 2
	if avgLen == 0 {
		return 1 // two empty strings are trivially similar
	}
	lcsRatio := float64(lcsLength(ra, rb)) / avgLen

	combined := lcsRatio*0.6 + ngramOverlap(ra, rb, 3)*0.4
	if combined > 1 {
		return 1
	}
	return combined
}

// lcsLength computes the longest common subsequence length of two rune
// slices, counting equal or [Similar] runes as matches.
func lcsLength(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			if a[i-1] == b[j-1] || Similar(a[i-1], b[j-1]) {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
		clear(curr)
	}
	return prev[lb]
}

// ngramOverlap computes the Jaccard overlap of the rune n-grams of a and b.
// Strings shorter than n fall back to plain rune-set overlap.
func ngramOverlap(a, b []rune, n int) float64 {
	if len(a) < n || len(b) < n {
		return setJaccard(runeSet(a), runeSet(b))
	}
	return setJaccard(ngramSet(a, n), ngramSet(b, n))
}

func runeSet(rs []rune) map[string]struct{} {
	set := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		set[string(r)] = struct{}{}
	}
	return set
}

func ngramSet(rs []rune, n int) map[string]struct{} {
	set := make(map[string]struct{}, len(rs))
	for i := 0; i+n <= len(rs); i++ {
		set[string(rs[i:i+n])] = struct{}{}
	}
	return set
}

func setJaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
