package validate

import (
	"fmt"
	"slices"

	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// suggestion returns a " (did you mean 'while'?)" hint for names one edit
// away from a reserved word, or "" when hints are off or nothing is close.
func (c *checker) suggestion(name string) string {
	if !c.opts.SuggestKeywords {
		return ""
	}
	if kw, ok := closestKeyword(name); ok {
		return fmt.Sprintf(" (did you mean '%s'?)", kw)
	}
	return ""
}

func closestKeyword(name string) (string, bool) {
	words := token.Keywords()
	slices.Sort(words)
	for _, kw := range words {
		if kw != name && editDistance(name, kw) == 1 {
			return kw, true
		}
	}
	return "", false
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
