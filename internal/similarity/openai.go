package similarity

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIScorer scores texts by cosine similarity between OpenAI
// embeddings of the query and each candidate.
type OpenAIScorer struct {
	client *openai.Client
	model  string
}

const defaultEmbeddingModel = "text-embedding-3-small"

func NewOpenAIScorer(apiKey, model string) *OpenAIScorer {
	if model == "" {
		model = defaultEmbeddingModel
	}
	return &OpenAIScorer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *OpenAIScorer) Score(ctx context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("openai scorer: no texts")
	}

	input := make([]string, 0, len(texts)+1)
	input = append(input, query)
	input = append(input, texts...)

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.model),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(input) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(input), len(resp.Data))
	}

	queryEmb := resp.Data[0].Embedding
	scores := make([]float64, len(texts))
	for i := range texts {
		scores[i] = clamp01(cosine(queryEmb, resp.Data[i+1].Embedding))
	}
	return scores, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
