package openai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/bizmatch/bizmatch/ai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
// Results are memoized in an LRU cache keyed by content hash, so repeated
// ranking calls over an unchanged catalog only pay for new texts.
type Embedder struct {
	embedder embeddings.Embedder
	cache    *lru.Cache[string, []float32]
	logger   *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for embeddings
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	// Wrap in langchaingo embedder
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[string, []float32](config.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder: embedder,
		cache:    cache,
		logger:   slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}
	return vectors[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings.
// Cached texts are served from memory; the remainder goes out in a single
// batched API call.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vec, ok := e.cache.Get(contentHash(text)); ok {
			vectors[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	e.logger.Debug("generating embeddings", "total", len(texts), "uncached", len(missing))

	generated, err := e.embedder.EmbedDocuments(ctx, missing)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(missing), "err", err)
		return nil, err
	}

	for j, vec := range generated {
		if j >= len(missingIdx) {
			break
		}
		vectors[missingIdx[j]] = vec
		e.cache.Add(contentHash(missing[j]), vec)
	}

	return vectors, nil
}

// contentHash computes a SHA-256 cache key for a text.
func contentHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
