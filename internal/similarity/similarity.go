// Package similarity scores texts against a query in vector space. The
// default backend is a local TF-IDF vectorizer over the candidate set; an
// OpenAI embeddings backend can be selected by configuration.
package similarity

import (
	"context"
	"fmt"
)

// Scorer returns a per-text similarity score in [0,1] against the query.
// Implementations may fail on degenerate input; callers must fall back
// gracefully.
type Scorer interface {
	Score(ctx context.Context, query string, texts []string) ([]float64, error)
}

// Backend names accepted by NewScorer.
const (
	BackendTFIDF  = "tfidf"
	BackendOpenAI = "openai"
)

// Options configures scorer construction.
type Options struct {
	Backend      string
	OpenAIAPIKey string
	OpenAIModel  string
}

// NewScorer builds the configured similarity backend.
func NewScorer(opts Options) (Scorer, error) {
	switch opts.Backend {
	case "", BackendTFIDF:
		return NewTFIDFScorer(), nil
	case BackendOpenAI:
		if opts.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai backend selected but no API key configured")
		}
		return NewOpenAIScorer(opts.OpenAIAPIKey, opts.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown similarity backend: %s", opts.Backend)
	}
}
