// Package fuzzy provides typo-tolerant matching for "did you mean" hints.
// Used by the grammar parser when a command or parameter name is unknown.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by edit distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // "-x" is the shortest name worth correcting
	}
}

// Match is one accepted candidate
type Match struct {
	Value    string
	Distance int
}

// Matches returns accepted candidates, closest first. Ties keep candidate order.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	lowered := strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		// Names are case-sensitive, so "Reset" still deserves "reset".
		if candidate == input {
			continue
		}
		if d := m.Distance(lowered, strings.ToLower(candidate)); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// Distance is the Levenshtein distance between a and b, capped at
// maxDistance+1 once the bound is provably exceeded.
func (m *Matcher) Distance(a, b string) int {
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

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Suggest returns the closest candidate, or "" when none is close enough
func Suggest(input string, candidates []string, maxDistance int) string {
	matches := NewMatcher(maxDistance).Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Suggestions returns up to limit candidates, closest first
func Suggestions(input string, candidates []string, maxDistance, limit int) []string {
	matches := NewMatcher(maxDistance).Matches(input, candidates)
	out := make([]string, 0, min(len(matches), limit))
	for _, match := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, match.Value)
	}
	return out
}
