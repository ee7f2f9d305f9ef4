package match

import "context"

// Scorer computes a continuous relevance score in [0,1] between a query and
// each candidate text. Implementations must be deterministic for identical
// input and should process the whole candidate batch in one call.
//
// Two interchangeable strategies ship with this package: TFIDFScorer
// (sparse character-n-gram statistics, fit per invocation) and
// EmbeddingScorer (dense sentence embeddings behind a lazily initialized
// backend). The rest of the pipeline never depends on which one is active.
type Scorer interface {
	// Score returns one similarity score per text, parallel to texts.
	Score(ctx context.Context, query string, texts []string) ([]float64, error)
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
