package match

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/bizmatch/bizmatch/ai"
)

// EmbedderFactory constructs the embedding backend for an EmbeddingScorer.
// It is invoked at most once, on the first scoring call, so the expensive
// model/client setup is deferred until dense scoring is actually used.
type EmbedderFactory func() (ai.Embedder, error)

// EmbeddingScorer scores query/candidate similarity with cosine distance
// over dense sentence embeddings. The backend is a process-lifetime
// resource: it is created lazily on first use, guarded so concurrent first
// calls perform a single initialization, reused for every subsequent call,
// and never torn down (it is read-only after load).
type EmbeddingScorer struct {
	factory  EmbedderFactory
	initOnce sync.Once
	embedder ai.Embedder
	initErr  error
	logger   *slog.Logger
}

// NewEmbeddingScorer creates a dense scorer whose backend is built by
// factory on first use.
func NewEmbeddingScorer(factory EmbedderFactory) (*EmbeddingScorer, error) {
	if factory == nil {
		return nil, ErrEmbedderFactoryRequired
	}
	return &EmbeddingScorer{
		factory: factory,
		logger:  slog.Default().With("component", "embedding-scorer"),
	}, nil
}

// NewEmbeddingScorerFromEmbedder creates a dense scorer around an already
// constructed embedder. Useful in tests and when the caller manages the
// backend lifecycle itself.
func NewEmbeddingScorerFromEmbedder(embedder ai.Embedder) (*EmbeddingScorer, error) {
	if embedder == nil {
		return nil, ErrEmbedderFactoryRequired
	}
	return NewEmbeddingScorer(func() (ai.Embedder, error) { return embedder, nil })
}

func (s *EmbeddingScorer) ensureEmbedder() (ai.Embedder, error) {
	s.initOnce.Do(func() {
		s.embedder, s.initErr = s.factory()
		if s.initErr != nil {
			s.logger.Error("embedding backend initialization failed", "err", s.initErr)
		}
	})
	if s.initErr != nil {
		// Initialization failure is fatal to the call; falling back to a
		// different scoring method here would change ranking semantics
		// behind the caller's back.
		return nil, fmt.Errorf("%w: %w", ErrEmbedderInit, s.initErr)
	}
	return s.embedder, nil
}

// Score implements Scorer. The query and all candidate texts go out as one
// batched embedding call. Cosine similarity of embeddings can be negative,
// so scores are clamped to [0,1].
func (s *EmbeddingScorer) Score(ctx context.Context, query string, texts []string) ([]float64, error) {
	embedder, err := s.ensureEmbedder()
	if err != nil {
		return nil, err
	}

	if len(texts) == 0 {
		return []float64{}, nil
	}

	batch := make([]string, 0, len(texts)+1)
	batch = append(batch, query)
	batch = append(batch, texts...)

	vectors, err := embedder.EmbedTexts(ctx, batch)
	if err != nil {
		s.logger.Error("failed to embed score batch", "count", len(batch), "err", err)
		return nil, err
	}
	if len(vectors) != len(batch) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrEmbeddingShape, len(vectors), len(batch))
	}

	queryVector := vectors[0]
	scores := make([]float64, len(texts))
	for i := range texts {
		scores[i] = clamp01(cosineSimilarity(queryVector, vectors[i+1]))
	}
	return scores, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
