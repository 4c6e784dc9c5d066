// Package rank scores candidate sections against a persona/job query,
// re-ranks them with vector similarity, and refines excerpts for the
// final digest.
package rank

import (
	"strings"

	"github.com/dgallion1/docsift/internal/query"
	"github.com/dgallion1/docsift/internal/section"
)

// ScoredSection carries a section through scoring and ranking. Similarity
// stays zero when vectorization is unavailable.
type ScoredSection struct {
	section.Section
	Heuristic  float64
	Similarity float64
	Final      float64
}

// RelevanceThreshold discards sections before re-ranking.
const RelevanceThreshold = 0.2

// irrelevantSignals force a section's score to the floor regardless of
// other signals.
var irrelevantSignals = []string{"xml data signature", "w3c xml", "xfa forms"}

// qualitySignals mark informative procedural content.
var qualitySignals = []string{":", "step", "how to", "create", "method"}

// HeuristicScore computes the weighted rule-based relevance estimate,
// always in [0,1].
func HeuristicScore(sec section.Section, q query.Query) float64 {
	title := strings.ToLower(sec.Title)
	content := strings.ToLower(sec.Content)
	combined := title + " " + content

	for _, term := range irrelevantSignals {
		if strings.Contains(combined, term) {
			return 0.1
		}
	}

	score := 0.0

	// Query term overlap: title hits weigh four times content hits.
	queryWords := wordSet(strings.ToLower(q.Combined))
	titleWords := wordSet(title)
	contentWords := wordSet(content)

	titleMatches := overlap(queryWords, titleWords)
	contentMatches := overlap(queryWords, contentWords)

	denom := len(queryWords) * 2
	if denom < 1 {
		denom = 1
	}
	queryScore := float64(titleMatches*4+contentMatches) / float64(denom)
	score += min1(queryScore) * 0.5

	// Keyword overlap.
	keywordMatches := 0
	for _, kw := range q.Keywords {
		if strings.Contains(combined, kw) {
			keywordMatches++
		}
	}
	score += min1(float64(keywordMatches)/8.0) * 0.3

	// Content quality.
	quality := 0.0
	wordCount := len(strings.Fields(combined))
	switch {
	case wordCount >= 50 && wordCount <= 400:
		quality += 0.6
	case wordCount >= 30 && wordCount <= 600:
		quality += 0.4
	}
	for _, signal := range qualitySignals {
		if strings.Contains(combined, signal) {
			quality += 0.4
			break
		}
	}
	score += quality * 0.2

	return min1(score)
}

// ScoreAll scores every section and keeps the candidates above the
// relevance threshold, preserving discovery order.
func ScoreAll(sections []section.Section, q query.Query) []ScoredSection {
	var candidates []ScoredSection
	for _, sec := range sections {
		h := HeuristicScore(sec, q)
		if h <= RelevanceThreshold {
			continue
		}
		candidates = append(candidates, ScoredSection{Section: sec, Heuristic: h, Final: h})
	}
	return candidates
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

func overlap(a, b map[string]bool) int {
	n := 0
	for w := range a {
		if b[w] {
			n++
		}
	}
	return n
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
