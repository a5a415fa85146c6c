// Package fuzzy provides edit-distance matching for "did you mean" hints.
// Used by options/errors.go when an unknown long flag is given.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by their distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" when none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the max distance, best first.
// Exact matches are not suggestions and are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue
		}

		distance := m.levenshteinDistance(input, lower)
		if distance <= m.maxDistance {
			matches = append(matches, Match{
				Value:    candidate,
				Distance: distance,
				Score:    m.score(input, lower, distance),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score weighs edit distance with a bonus for a shared prefix, so that
// "only" prefers "only-dirs" over an equally distant name.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	score := 1.0 - float64(distance)/float64(maxLen)

	if prefix := commonPrefixLength(input, candidate); prefix > 0 {
		score += float64(prefix) / float64(min(len(input), len(candidate))) * 0.3
	}

	return min(score, 1.0)
}

// levenshteinDistance returns the edit distance between a and b, or
// maxDistance+1 as soon as it is known to exceed maxDistance.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			current[j] = min(current[j-1]+1, previous[j]+1, previous[j-1]+cost)
			rowMin = min(rowMin, current[j])
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestFlag finds the best matching flag name
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, flags)
}
