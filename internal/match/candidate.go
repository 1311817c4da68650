package match

import (
	"sort"
)

const (
	// DefaultMinScore is the lowest similarity worth suggesting.
	DefaultMinScore = 0.5
	// DefaultLimit caps the number of suggestions.
	DefaultLimit = 3
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score, best first.
type CandidateList []Candidate

// RankCandidates scores every known name against target, best first.
// Ties are broken alphabetically so the order is deterministic.
func RankCandidates(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{Name: name, Score: NameScore(target, name)})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least minScore.
func (c CandidateList) AboveThreshold(minScore float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= minScore {
			out = append(out, cand)
		}
	}

	return out
}

// Names lists the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to DefaultLimit known names close enough to target.
func Suggest(target string, known []string) []string {
	return RankCandidates(target, known).AboveThreshold(DefaultMinScore).Top(DefaultLimit).Names()
}
