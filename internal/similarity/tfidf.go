package similarity

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// TFIDFScorer vectorizes the candidate texts with smoothed TF-IDF over
// uni- and bi-grams (English stop words removed, vocabulary capped) and
// scores each text by cosine similarity to the query.
type TFIDFScorer struct {
	maxFeatures int
}

// ErrEmptyVocabulary is returned when no usable terms survive
// tokenization, e.g. for an empty or stop-word-only candidate set.
var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

const defaultMaxFeatures = 2000

func NewTFIDFScorer() *TFIDFScorer {
	return &TFIDFScorer{maxFeatures: defaultMaxFeatures}
}

var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

func (s *TFIDFScorer) Score(_ context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	docs := make([][]string, len(texts))
	totalCount := make(map[string]int)
	docFreq := make(map[string]int)
	for i, text := range texts {
		terms := ngrams(tokenize(text))
		docs[i] = terms
		seen := make(map[string]bool)
		for _, t := range terms {
			totalCount[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}
	if len(totalCount) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := selectVocabulary(totalCount, s.maxFeatures)

	// Smoothed inverse document frequency.
	n := float64(len(texts))
	idf := make(map[string]float64, len(vocab))
	for term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	queryVec := vectorize(ngrams(tokenize(query)), vocab, idf)

	scores := make([]float64, len(texts))
	for i, terms := range docs {
		scores[i] = clamp01(dot(vectorize(terms, vocab, idf), queryVec))
	}
	return scores, nil
}

func tokenize(text string) []string {
	var out []string
	for _, t := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if !englishStopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

// ngrams expands a token stream into unigrams plus adjacent bigrams.
func ngrams(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// selectVocabulary keeps the maxFeatures highest-frequency terms, ties
// broken alphabetically for determinism.
func selectVocabulary(counts map[string]int, maxFeatures int) map[string]int {
	type termCount struct {
		term  string
		count int
	}
	all := make([]termCount, 0, len(counts))
	for t, c := range counts {
		all = append(all, termCount{t, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].term < all[j].term
	})
	if len(all) > maxFeatures {
		all = all[:maxFeatures]
	}

	vocab := make(map[string]int, len(all))
	for i, tc := range all {
		vocab[tc.term] = i
	}
	return vocab
}

// vectorize builds an l2-normalized tf-idf vector over the vocabulary.
func vectorize(terms []string, vocab map[string]int, idf map[string]float64) []float64 {
	vec := make([]float64, len(vocab))
	for _, t := range terms {
		if idx, ok := vocab[t]; ok {
			vec[idx] += idf[t]
		}
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
