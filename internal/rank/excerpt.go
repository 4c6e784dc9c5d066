package rank

import (
	"strings"
	"unicode"

	"github.com/dgallion1/docsift/internal/normalize"
)

// excerptSignals mark sentences with high information density.
var excerptSignals = []string{":", "including", "such as", "how to"}

const (
	maxSentencesScored = 8
	minSentenceChars   = 20
	shortWinnerChars   = 100
	maxExcerptChars    = 400
	rawFallbackChars   = 200
)

// Refine selects the best representative sentence from a section's
// content for the digest, optionally merging a related follow-up sentence
// when the winner is short.
func Refine(content, title, queryText string) string {
	content = normalize.Clean(content)

	var sentences []string
	for _, s := range splitSentences(content) {
		if len(s) > minSentenceChars {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return firstRunes(content, rawFallbackChars)
	}

	querySet := wordSet(strings.ToLower(queryText))
	titleSet := wordSet(strings.ToLower(title))

	best := sentences[0]
	bestScore := 0
	limit := len(sentences)
	if limit > maxSentencesScored {
		limit = maxSentencesScored
	}
	for _, sentence := range sentences[:limit] {
		sentSet := wordSet(strings.ToLower(sentence))

		score := overlap(querySet, sentSet) * 10
		score += overlap(titleSet, sentSet) * 5
		if wc := len(strings.Fields(sentence)); wc >= 15 && wc <= 50 {
			score += 3
		}
		lower := strings.ToLower(sentence)
		for _, signal := range excerptSignals {
			if strings.Contains(lower, signal) {
				score += 2
				break
			}
		}

		if score > bestScore {
			bestScore = score
			best = sentence
		}
	}

	// A short winner may read as a fragment; append the first of the next
	// two sentences that shares enough words with it.
	if len(best) < shortWinnerChars && len(sentences) > 1 {
		bestSet := wordSet(strings.ToLower(best))
		end := len(sentences)
		if end > 3 {
			end = 3
		}
		for _, next := range sentences[1:end] {
			if overlap(wordSet(strings.ToLower(next)), bestSet) >= 2 {
				combined := best + " " + next
				if len(combined) <= maxExcerptChars {
					best = combined
				}
				break
			}
		}
	}

	return best
}

// splitSentences breaks text at sentence punctuation followed by
// whitespace and a capital letter.
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = j
		i = j - 1
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
