package textutil

import "strings"

// Score computes a layered similarity confidence between two titles in [0, 1].
// Tiers, highest confidence first: exact equality after Kana folding, core
// title equality, lexical containment, and finally a character-level
// subsequence ratio. Higher tiers reflect semantically stronger equivalence.
func Score(a, b string) float64 {
	if ContainsKana(a) || ContainsKana(b) {
		a = FoldKana(a)
		b = FoldKana(b)
	}
	if a == b {
		return 1.0
	}

	a = strings.TrimSpace(strings.ToLower(a))
	b = strings.TrimSpace(strings.ToLower(b))

	coreA := ExtractCore(a)
	coreB := ExtractCore(b)
	if coreA != "" && coreB != "" {
		if coreA == coreB {
			return 0.95
		}
		if strings.Contains(b, coreA) || strings.Contains(b, a) || strings.Contains(a, coreB) {
			return 0.85
		}
	}

	return Ratio(a, b)
}

// Ratio returns the edit-similarity ratio 2*LCS(a,b)/(len(a)+len(b)) computed
// over runes, where LCS is the longest common subsequence length.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	return 2 * float64(lcsLength(ra, rb)) / float64(total)
}

// lcsLength computes the longest common subsequence length with a two-row DP.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// LongestCommonRun returns the length in runes of the longest common
// contiguous substring of a and b.
func LongestCommonRun(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	best := 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return best
}
