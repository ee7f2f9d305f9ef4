package match

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/bizmatch/bizmatch/core"
)

// Fusion constants. Each matched keyword is worth keywordBonus, capped per
// mode; literal keyword containment must dominate the ordering, with vector
// similarity acting as tie-break and recall fallback.
const (
	keywordBonus     = 0.1
	anyMatchBonusCap = 0.3
	allMatchBonusCap = 0.5
)

// Options controls a single ranking call.
type Options struct {
	// TopN bounds the result length. Zero or negative means unlimited.
	TopN int

	// MinScore is the minimum raw similarity for candidates admitted to
	// the similarity-only tier. Keyword-matched candidates are exempt.
	MinScore float64

	// MatchAll selects the all-match fusion mode: candidates without any
	// keyword match are dropped, the region hard filter applies, and
	// IsExactMatch requires every query keyword to match.
	MatchAll bool
}

// DefaultOptions returns the options used for an ordinary search: at most
// 30 results, similarity-tier floor of 0.2, any-match fusion.
func DefaultOptions() Options {
	return Options{TopN: 30, MinScore: 0.2}
}

// Ranker matches a free-text description against a program catalog and
// returns a ranked, size-bounded subset. It combines lexical keyword
// containment with a pluggable similarity scorer; the pipeline is a pure
// function of (query, candidates, options) with no state between calls.
type Ranker struct {
	scorer Scorer
	logger *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker around a similarity scorer.
func NewRanker(scorer Scorer, opts ...Option) (*Ranker, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	r := &Ranker{
		scorer: scorer,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank ranks the candidate programs against the query.
// The input slice is never mutated; every result carries a fresh copy of its
// program alongside the derived match signals.
func (r *Ranker) Rank(ctx context.Context, query string, programs []core.Program, opts Options) ([]core.RankedProgram, error) {
	return r.RankWithMonitor(ctx, query, programs, opts, nil)
}

// RankWithMonitor ranks the candidate programs against the query, invoking
// the monitor at each stage of the pipeline.
//
// An empty candidate list returns empty. An empty (or blank) query returns
// the candidates unchanged, truncated to TopN, without invoking the scorer.
func (r *Ranker) RankWithMonitor(ctx context.Context, query string, programs []core.Program, opts Options, monitor RankMonitor) ([]core.RankedProgram, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if len(programs) == 0 {
		return []core.RankedProgram{}, nil
	}
	if strings.TrimSpace(query) == "" {
		return passthrough(programs, opts.TopN), nil
	}

	monitor.Start(query)

	keywords := ExtractKeywords(query)
	monitor.AfterKeywordExtraction(keywords)

	// Composite texts are generated once per record and reused for both
	// lexical matching and similarity scoring.
	texts := make([]string, len(programs))
	for i := range programs {
		texts[i] = programs[i].SearchText()
	}

	// One batched scoring call per invocation.
	scores, err := r.scorer.Score(ctx, query, texts)
	if err != nil {
		r.logger.Error("similarity scoring failed", "query", query, "err", err)
		return nil, err
	}
	if len(scores) != len(programs) {
		return nil, ErrScoreMismatch
	}
	monitor.AfterSimilarityScoring(scores)

	// Region keywords participate only in the all-match hard filter;
	// any-match mode never filters by region.
	var regions []string
	if opts.MatchAll {
		for _, kw := range keywords {
			if IsRegionKeyword(kw) {
				regions = append(regions, kw)
			}
		}
	}

	var exactTier, similarityTier []core.RankedProgram
	for i := range programs {
		score := clamp01(scores[i])
		matched := MatchKeywords(keywords, texts[i])

		if opts.MatchAll {
			if len(matched) == 0 {
				continue
			}
			if !regionCompatible(strings.ToLower(texts[i]), regions) {
				monitor.RegionRejected(&programs[i])
				continue
			}
			rp := fuse(programs[i], score, matched, len(keywords), allMatchBonusCap)
			rp.Match.IsExactMatch = len(matched) == len(keywords)
			rp.Match.RegionMatched = true
			monitor.KeywordHit(&rp)
			exactTier = append(exactTier, rp)
			continue
		}

		if len(matched) > 0 {
			rp := fuse(programs[i], score, matched, len(keywords), anyMatchBonusCap)
			rp.Match.IsExactMatch = true
			monitor.KeywordHit(&rp)
			exactTier = append(exactTier, rp)
		} else if score >= opts.MinScore {
			rp := core.RankedProgram{
				Program: programs[i],
				Match: core.MatchResult{
					SimilarityScore: score,
					FinalScore:      score,
					TotalKeywords:   len(keywords),
				},
			}
			monitor.SimilarityHit(&rp)
			similarityTier = append(similarityTier, rp)
		}
		// Unmatched below MinScore is dropped entirely.
	}

	// Exact-match tier: most keywords matched first, then fused score.
	// Stable sorts keep input order on full ties, which makes repeated
	// ranking of the same input idempotent.
	sort.SliceStable(exactTier, func(i, j int) bool {
		if exactTier[i].Match.MatchedCount != exactTier[j].Match.MatchedCount {
			return exactTier[i].Match.MatchedCount > exactTier[j].Match.MatchedCount
		}
		return exactTier[i].Match.FinalScore > exactTier[j].Match.FinalScore
	})
	sort.SliceStable(similarityTier, func(i, j int) bool {
		return similarityTier[i].Match.FinalScore > similarityTier[j].Match.FinalScore
	})

	// Keyword-matched candidates always outrank similarity-only ones.
	results := append(exactTier, similarityTier...)
	results = truncate(results, opts.TopN)
	monitor.Finish(results)

	return results, nil
}

// fuse builds a RankedProgram with the keyword bonus applied: each match is
// worth keywordBonus up to cap, and the fused score never exceeds 1.0.
func fuse(program core.Program, score float64, matched []string, totalKeywords int, cap float64) core.RankedProgram {
	bonus := math.Min(keywordBonus*float64(len(matched)), cap)
	return core.RankedProgram{
		Program: program,
		Match: core.MatchResult{
			SimilarityScore: score,
			FinalScore:      math.Min(score+bonus, 1.0),
			MatchedKeywords: matched,
			MatchedCount:    len(matched),
			TotalKeywords:   totalKeywords,
		},
	}
}

// passthrough wraps programs unchanged for the empty-query short circuit.
func passthrough(programs []core.Program, topN int) []core.RankedProgram {
	results := make([]core.RankedProgram, len(programs))
	for i := range programs {
		results[i] = core.RankedProgram{Program: programs[i]}
	}
	return truncate(results, topN)
}

func truncate(results []core.RankedProgram, topN int) []core.RankedProgram {
	if topN > 0 && len(results) > topN {
		return results[:topN]
	}
	return results
}
