package similarity

import (
	"context"
	"errors"
	"testing"
)

func TestTFIDFScorer_MatchingTextScoresHigher(t *testing.T) {
	scorer := NewTFIDFScorer()
	texts := []string{
		"plan a coastal trip with local restaurants and beach activities",
		"prepare fillable tax forms with digital signatures",
	}

	scores, err := scorer.Score(context.Background(), "coastal trip beach restaurants", texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0] <= scores[1] {
		t.Errorf("expected matching text to outscore unrelated text: %v", scores)
	}
	if scores[0] < 0.3 {
		t.Errorf("expected substantial similarity for overlapping text, got %f", scores[0])
	}
}

func TestTFIDFScorer_ScoresWithinRange(t *testing.T) {
	scorer := NewTFIDFScorer()
	texts := []string{
		"identical words identical words identical words",
		"completely different content here",
		"",
	}

	scores, err := scorer.Score(context.Background(), "identical words", texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("score %d out of range: %f", i, s)
		}
	}
}

func TestTFIDFScorer_NoTexts(t *testing.T) {
	scorer := NewTFIDFScorer()
	if _, err := scorer.Score(context.Background(), "anything", nil); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestTFIDFScorer_StopWordOnlyTexts(t *testing.T) {
	scorer := NewTFIDFScorer()
	if _, err := scorer.Score(context.Background(), "query", []string{"the and of", "is was"}); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestTFIDFScorer_UnrelatedQueryScoresZero(t *testing.T) {
	scorer := NewTFIDFScorer()
	scores, err := scorer.Score(context.Background(), "quantum chromodynamics", []string{"vegetarian buffet menu planning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores[0] != 0 {
		t.Errorf("expected zero similarity for disjoint vocabulary, got %f", scores[0])
	}
}
