package engine

import (
	"sort"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/fuzzy"
)

// sortCandidates orders list in place under the ranking policy: recency
// first, then fuzzy relevance, unscorable candidates last, title as the
// final tiebreak.
func (e *Engine) sortCandidates(list []*domain.Candidate, pattern *fuzzy.Pattern) {
	sort.SliceStable(list, func(i, j int) bool {
		return e.less(list[i], list[j], pattern)
	})
}

func (e *Engine) less(a, b *domain.Candidate, pattern *fuzzy.Pattern) bool {
	aRecent, aHas := e.recencyScore(a)
	bRecent, bHas := e.recencyScore(b)

	// A recently used candidate always beats one that is not, whatever
	// the fuzzy match quality
	switch {
	case aHas && !bHas:
		return true
	case bHas && !aHas:
		return false
	case aHas && bHas:
		return aRecent > bRecent
	}

	aScore, aOK := e.fuzzyScore(a, pattern)
	bScore, bOK := e.fuzzyScore(b, pattern)

	switch {
	case !aOK && !bOK:
		return a.Title < b.Title
	case !aOK:
		return false
	case !bOK:
		return true
	}

	return aScore < bScore
}

// recencyScore looks the candidate up in the recency store; only
// applications participate
func (e *Engine) recencyScore(c *domain.Candidate) (int, bool) {
	id, ok := c.Identity.(domain.AppIdentity)
	if !ok {
		return 0, false
	}
	return e.recents.Score(id.App.Filename())
}

// fuzzyScore is the candidate's relevance: match start plus shortest run
// length, lower is better. Computed at most once per cycle and cached on
// the candidate.
func (e *Engine) fuzzyScore(c *domain.Candidate, pattern *fuzzy.Pattern) (int, bool) {
	if c.MatchScore != nil {
		return *c.MatchScore, true
	}

	match, ok := pattern.Find(c.Title)
	if !ok {
		return 0, false
	}

	score := match.Index + match.Length
	c.MatchScore = &score
	return score, true
}
