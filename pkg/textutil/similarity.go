// Package textutil holds small pure text helpers shared by the trainers.
package textutil

import "strings"

// Similarity scores how close two phrases are, 0-100. Both sides are
// lowercased and stripped to [a-z0-9] before a Levenshtein comparison, so
// punctuation and spacing differences in a transcript don't cost points.
func Similarity(a, b string) int {
	s1 := normalize(a)
	s2 := normalize(b)

	if s1 == s2 {
		return 100
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	// Single-row Levenshtein.
	prev := make([]int, len(s1)+1)
	curr := make([]int, len(s1)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(s2); j++ {
		curr[0] = j
		for i := 1; i <= len(s1); i++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[i] = min3(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	distance := prev[len(s1)]
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	// Round to the nearest percent.
	return (200*(maxLen-distance) + maxLen) / (2 * maxLen)
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
