// Package fuzzy turns query strings into reusable case-insensitive
// subsequence matchers: every rune of the query must appear in the
// candidate text, in order, not necessarily contiguous.
package fuzzy

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the compiled-pattern cache for long-lived sessions
const cacheSize = 128

// Match describes where a pattern matched within a text
type Match struct {
	Index  int // start offset of the earliest match
	Length int // shortest run length among all matches
}

// Pattern is a compiled, immutable subsequence matcher
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// Matcher compiles patterns and caches them by their exact raw string
type Matcher struct {
	cache *lru.Cache[string, *Pattern]
}

// NewMatcher creates a matcher with an empty pattern cache
func NewMatcher() *Matcher {
	cache, _ := lru.New[string, *Pattern](cacheSize)
	return &Matcher{cache: cache}
}

// Compile builds the subsequence pattern for raw, reusing a cached compile
// when the same string was seen before
func (m *Matcher) Compile(raw string) (*Pattern, error) {
	if p, ok := m.cache.Get(raw); ok {
		return p, nil
	}

	var expr strings.Builder
	for _, r := range raw {
		// User input must never reach the regexp engine as syntax
		expr.WriteString(".*")
		expr.WriteString(regexp.QuoteMeta(string(r)))
	}

	re, err := regexp.Compile("(?i)" + expr.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", raw, err)
	}

	p := &Pattern{raw: raw, re: re}
	m.cache.Add(raw, p)
	return p, nil
}

// Raw returns the query string the pattern was compiled from
func (p *Pattern) Raw() string {
	return p.raw
}

// Matches reports whether text contains the pattern as a subsequence
func (p *Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// Find returns the earliest match start and the shortest run length among
// all matches in text, or false if the text does not contain the pattern
func (p *Pattern) Find(text string) (Match, bool) {
	locs := p.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return Match{}, false
	}

	match := Match{Index: locs[0][0], Length: locs[0][1] - locs[0][0]}
	for _, loc := range locs[1:] {
		if n := loc[1] - loc[0]; n < match.Length {
			match.Length = n
		}
	}
	return match, true
}
