package rank

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dgallion1/docsift/internal/similarity"
)

const (
	heuristicWeight  = 0.7
	similarityWeight = 0.3

	// CandidatePool is the ranking depth kept after re-ranking; callers
	// truncate further for the published digest.
	CandidatePool = 10
)

// Rerank blends vector-similarity scores into the heuristic ranking and
// returns the top candidates in descending final-score order. A failed
// vectorization falls back to heuristic-only scores. The sort is stable,
// so ties keep discovery order and reruns are deterministic.
func Rerank(ctx context.Context, scorer similarity.Scorer, queryText string, candidates []ScoredSection, log *slog.Logger) []ScoredSection {
	if len(candidates) == 0 {
		return nil
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Title + " " + c.Content
	}

	sims, err := scorer.Score(ctx, queryText, texts)
	if err != nil || len(sims) != len(candidates) {
		if log != nil {
			log.Warn("similarity scoring unavailable, using heuristic scores", "error", err)
		}
		for i := range candidates {
			candidates[i].Final = candidates[i].Heuristic
		}
	} else {
		for i := range candidates {
			candidates[i].Similarity = sims[i]
			candidates[i].Final = candidates[i].Heuristic*heuristicWeight + sims[i]*similarityWeight
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Final > candidates[j].Final
	})

	if len(candidates) > CandidatePool {
		candidates = candidates[:CandidatePool]
	}
	return candidates
}
