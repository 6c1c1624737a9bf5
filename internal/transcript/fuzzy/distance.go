package fuzzy

// WeightedDistance computes the Levenshtein distance between a and b over
// runes, with substitution cost 0 for identical runes, 0.5 for
// [Similar] runes, and 1.0 otherwise. Insertions and deletions cost 1.0.
//
// Because no substitution ever costs more than 1.0, the result is always
// less than or equal to the plain Levenshtein distance.
func WeightedDistance(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb)
	}
	if lb == 0 {
		return float64(la)
	}

	// Two sliding rows keep the DP at O(min-row) memory.
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= la; i++ {
		curr[0] = float64(i)
		for j := 1; j <= lb; j++ {
			var sub float64
			switch {
			case ra[i-1] == rb[j-1]:
				sub = 0
			case Similar(ra[i-1], rb[j-1]):
				sub = 0.5
			default:
				sub = 1.0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+sub)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// thresholds returns the (maxDistance, minConfidence) gate for a query of the
// given rune length. Short words get no edit allowance at all: their
// neighbourhoods are too dense for fuzzy matching to be safe.
func thresholds(length int) (maxDistance, minConfidence float64) {
	switch {
	case length <= 3:
		return 0.0, 1.0
	case length <= 5:
		return 2.0, 0.6
	case length <= 8:
		return 3.0, 0.5
	case length <= 10:
		return 4.0, 0.4
	case length <= 15:
		return 5.0, 0.4
	default:
		return 6.0, 0.3
	}
}

// Confidence scores a candidate match in [0, 1] from its weighted edit
// distance. The base ratio 1−d/maxLen is damped by a length-difference
// penalty and boosted by 10% when the distance indicates substantial
// phonetic overlap (d < 0.7×maxLen).
func Confidence(original, candidate string, distance float64) float64 {
	lo := len([]rune(original))
	lc := len([]rune(candidate))
	maxLen := float64(max(lo, lc))
	if maxLen == 0 {
		return 0
	}

	base := 1 - distance/maxLen

	lengthDiff := float64(lo - lc)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	lengthPenalty := 1 - lengthDiff/maxLen*0.2

	phoneticBonus := 1.0
	if distance < maxLen*0.7 {
		phoneticBonus = 1.1
	}

	conf := base * lengthPenalty * phoneticBonus
	if conf > 1 {
		return 1
	}
	if conf < 0 {
		return 0
	}
	return conf
}
