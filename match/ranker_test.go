package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmatch/bizmatch/core"
)

// stubScorer returns fixed scores, or zeros when none are configured.
type stubScorer struct {
	scores []float64
	err    error
	calls  int
}

func (s *stubScorer) Score(_ context.Context, _ string, texts []string) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.scores != nil {
		return s.scores, nil
	}
	return make([]float64, len(texts)), nil
}

func newTestRanker(t *testing.T, scorer Scorer) *Ranker {
	t.Helper()
	ranker, err := NewRanker(scorer)
	require.NoError(t, err)
	return ranker
}

func TestNewRanker(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ranker, err := NewRanker(NewTFIDFScorer())
		require.NoError(t, err)
		assert.NotNil(t, ranker)
	})

	t.Run("nil scorer", func(t *testing.T) {
		_, err := NewRanker(nil)
		assert.Equal(t, ErrScorerRequired, err)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		ranker, err := NewRanker(NewTFIDFScorer(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, ranker)
	})
}

func TestRank_EmptyInputs(t *testing.T) {
	ctx := context.Background()
	programs := []core.Program{
		{Title: "A 지원사업"},
		{Title: "B 지원사업"},
	}

	t.Run("empty candidate list", func(t *testing.T) {
		ranker := newTestRanker(t, &stubScorer{})
		results, err := ranker.Rank(ctx, "카페 마케팅", nil, DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query passes candidates through unchanged", func(t *testing.T) {
		scorer := &stubScorer{}
		ranker := newTestRanker(t, scorer)
		results, err := ranker.Rank(ctx, "", programs, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "A 지원사업", results[0].Program.Title)
		assert.Equal(t, "B 지원사업", results[1].Program.Title)
		assert.Zero(t, scorer.calls, "scorer must not run for empty queries")
	})

	t.Run("empty query still truncates to topN", func(t *testing.T) {
		ranker := newTestRanker(t, &stubScorer{})
		results, err := ranker.Rank(ctx, "", programs, Options{TopN: 1})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "A 지원사업", results[0].Program.Title)
	})
}

func TestRank_AnyMatchTiering(t *testing.T) {
	ctx := context.Background()
	programs := []core.Program{
		{Title: "카페 마케팅 교육", Description: "카페 사장님 대상 마케팅 강의"},
		{Title: "축산 농가 시설 지원", Description: "축사 현대화"},
	}
	// Candidate B gets the higher raw similarity; keyword matches must
	// still dominate.
	scorer := &stubScorer{scores: []float64{0.1, 0.9}}
	ranker := newTestRanker(t, scorer)

	results, err := ranker.Rank(ctx, "카페 온라인 마케팅", programs, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0].Match
	assert.True(t, first.IsExactMatch)
	assert.Equal(t, 2, first.MatchedCount)
	assert.Equal(t, []string{"카페", "마케팅"}, first.MatchedKeywords)
	assert.Equal(t, "카페 마케팅 교육", results[0].Program.Title)

	second := results[1].Match
	assert.False(t, second.IsExactMatch)
	assert.Zero(t, second.MatchedCount)
}

func TestRank_SimilarityTierThreshold(t *testing.T) {
	ctx := context.Background()
	programs := []core.Program{
		{Title: "숙박업 방역 지원"},
		{Title: "운수업 유가 보조"},
	}
	scorer := &stubScorer{scores: []float64{0.25, 0.1}}
	ranker := newTestRanker(t, scorer)

	results, err := ranker.Rank(ctx, "카페 마케팅", programs, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 1, "candidates below MinScore with no keyword match are dropped")
	assert.Equal(t, "숙박업 방역 지원", results[0].Program.Title)
	assert.InDelta(t, 0.25, results[0].Match.FinalScore, 1e-9)
}

func TestRank_BonusCaps(t *testing.T) {
	ctx := context.Background()

	t.Run("any-match bonus capped at 0.3", func(t *testing.T) {
		// Ten keywords, all contained in the candidate text.
		query := "카페 마케팅 자금 창업 교육 컨설팅 수출 디지털 온라인 홍보"
		program := core.Program{
			Title:       "카페 마케팅 자금 창업 교육",
			Description: "컨설팅 수출 디지털 온라인 홍보",
		}
		scorer := &stubScorer{scores: []float64{0.65}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, query, []core.Program{program}, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 10, results[0].Match.MatchedCount)
		assert.InDelta(t, 0.95, results[0].Match.FinalScore, 1e-9)
	})

	t.Run("final score never exceeds one", func(t *testing.T) {
		program := core.Program{Title: "카페 마케팅 지원"}
		scorer := &stubScorer{scores: []float64{0.95}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "카페 마케팅", []core.Program{program}, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 1.0, results[0].Match.FinalScore)
	})

	t.Run("all-match bonus capped at 0.5", func(t *testing.T) {
		query := "카페 마케팅 자금 창업 교육 컨설팅 수출"
		program := core.Program{
			Title:       "카페 마케팅 자금 창업",
			Description: "교육 컨설팅 수출",
		}
		scorer := &stubScorer{scores: []float64{0.2}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, query, []core.Program{program}, Options{MatchAll: true})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 7, results[0].Match.MatchedCount)
		assert.InDelta(t, 0.7, results[0].Match.FinalScore, 1e-9)
	})
}

func TestRank_AllMatchMode(t *testing.T) {
	ctx := context.Background()

	t.Run("unmatched candidates dropped regardless of similarity", func(t *testing.T) {
		programs := []core.Program{
			{Title: "카페 운영자금"},
			{Title: "제조업 스마트공장"},
		}
		scorer := &stubScorer{scores: []float64{0.1, 0.99}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "카페 자금", programs, Options{MatchAll: true})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "카페 운영자금", results[0].Program.Title)
	})

	t.Run("exact match flag requires every keyword", func(t *testing.T) {
		programs := []core.Program{
			{Title: "카페 마케팅 지원"},
			{Title: "카페 운영 지원"},
		}
		scorer := &stubScorer{scores: []float64{0.3, 0.3}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "카페 마케팅", programs, Options{MatchAll: true})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Match.IsExactMatch)
		assert.Equal(t, 2, results[0].Match.MatchedCount)
		assert.False(t, results[1].Match.IsExactMatch)
		assert.Equal(t, 1, results[1].Match.MatchedCount)
	})

	t.Run("region mismatch is a hard filter", func(t *testing.T) {
		// "군산" maps to 전북; the candidate mentions neither the city,
		// the province, nor the nationwide marker.
		programs := []core.Program{
			{Title: "서울 카페 창업 지원", Target: "서울 소재 소상공인"},
		}
		scorer := &stubScorer{scores: []float64{0.9}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "군산 카페", programs, Options{MatchAll: true})
		require.NoError(t, err)
		assert.Empty(t, results, "geographically incompatible programs are excluded")
	})

	t.Run("nationwide programs survive the region filter", func(t *testing.T) {
		programs := []core.Program{
			{Title: "카페 창업 지원", Target: "전국 소상공인"},
		}
		scorer := &stubScorer{scores: []float64{0.2}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "군산 카페", programs, Options{MatchAll: true})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Match.RegionMatched)
	})

	t.Run("any-match mode never region-filters", func(t *testing.T) {
		programs := []core.Program{
			{Title: "서울 카페 창업 지원", Target: "서울 소재 소상공인"},
		}
		scorer := &stubScorer{scores: []float64{0.1}}
		ranker := newTestRanker(t, scorer)

		results, err := ranker.Rank(ctx, "군산 카페", programs, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1, "region mismatch only scores, never filters, in any-match mode")
	})
}

func TestRank_OrderingProperties(t *testing.T) {
	ctx := context.Background()
	programs := []core.Program{
		{Title: "햇살론 소액 대출"},
		{Title: "카페 마케팅 바우처"},
		{Title: "전통시장 온라인 판로"},
		{Title: "카페 시설 개선"},
	}
	scorer := &stubScorer{scores: []float64{0.8, 0.1, 0.5, 0.3}}
	ranker := newTestRanker(t, scorer)

	results, err := ranker.Rank(ctx, "카페 온라인 마케팅", programs, DefaultOptions())
	require.NoError(t, err)

	t.Run("exact tier strictly precedes similarity tier", func(t *testing.T) {
		seenSimilarity := false
		for _, r := range results {
			if !r.Match.IsExactMatch {
				seenSimilarity = true
			} else {
				assert.False(t, seenSimilarity, "keyword-matched result after a similarity-only one")
			}
		}
	})

	t.Run("exact tier sorted by matched count then score", func(t *testing.T) {
		require.GreaterOrEqual(t, len(results), 2)
		assert.Equal(t, "카페 마케팅 바우처", results[0].Program.Title)   // 2 matches
		assert.Equal(t, "전통시장 온라인 판로", results[1].Program.Title) // 1 match, higher fused score than 카페 시설 개선
	})

	t.Run("final scores bounded", func(t *testing.T) {
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Match.FinalScore, 0.0)
			assert.LessOrEqual(t, r.Match.FinalScore, 1.0)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		again, err := ranker.Rank(ctx, "카페 온라인 마케팅", programs, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, results, again)
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		assert.Equal(t, "햇살론 소액 대출", programs[0].Title)
		assert.Zero(t, programs[0].Id)
	})
}

func TestRank_Truncation(t *testing.T) {
	ctx := context.Background()
	programs := make([]core.Program, 10)
	scores := make([]float64, 10)
	for i := range programs {
		programs[i] = core.Program{Title: "카페 지원 프로그램", Agency: "기관"}
		scores[i] = 0.5
	}
	scorer := &stubScorer{scores: scores}
	ranker := newTestRanker(t, scorer)

	t.Run("topN bounds the output", func(t *testing.T) {
		results, err := ranker.Rank(ctx, "카페", programs, Options{TopN: 3, MinScore: 0.2})
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("unset topN returns the full ranked list", func(t *testing.T) {
		results, err := ranker.Rank(ctx, "카페", programs, Options{MinScore: 0.2})
		require.NoError(t, err)
		assert.Len(t, results, 10)
	})
}

func TestRank_ScorerFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("vector space failed to fit")
	ranker := newTestRanker(t, &stubScorer{err: boom})

	_, err := ranker.Rank(ctx, "카페", []core.Program{{Title: "t"}}, DefaultOptions())
	assert.ErrorIs(t, err, boom)
}

func TestRank_ScoreMismatch(t *testing.T) {
	ctx := context.Background()
	ranker := newTestRanker(t, &stubScorer{scores: []float64{0.1}})

	_, err := ranker.Rank(ctx, "카페", []core.Program{{Title: "a"}, {Title: "b"}}, DefaultOptions())
	assert.ErrorIs(t, err, ErrScoreMismatch)
}

// trackingMonitor records hook invocations for pipeline observability tests.
type trackingMonitor struct {
	started        bool
	keywords       []string
	scores         []float64
	keywordHits    int
	similarityHits int
	regionRejects  int
	finished       bool
}

func (m *trackingMonitor) Start(_ string)                      { m.started = true }
func (m *trackingMonitor) AfterKeywordExtraction(kws []string) { m.keywords = kws }
func (m *trackingMonitor) AfterSimilarityScoring(s []float64)  { m.scores = s }
func (m *trackingMonitor) KeywordHit(_ *core.RankedProgram)    { m.keywordHits++ }
func (m *trackingMonitor) SimilarityHit(_ *core.RankedProgram) { m.similarityHits++ }
func (m *trackingMonitor) RegionRejected(_ *core.Program)      { m.regionRejects++ }
func (m *trackingMonitor) Finish(_ []core.RankedProgram)       { m.finished = true }

func TestRankWithMonitor(t *testing.T) {
	ctx := context.Background()
	programs := []core.Program{
		{Title: "카페 마케팅 지원", Target: "전국 소상공인"},
		{Title: "서울 카페 창업 공간", Target: "서울 입주 기업"},
		{Title: "수출 물류 바우처"},
	}
	scorer := &stubScorer{scores: []float64{0.4, 0.4, 0.4}}
	ranker := newTestRanker(t, scorer)

	monitor := &trackingMonitor{}
	_, err := ranker.RankWithMonitor(ctx, "전북 카페", programs, Options{MatchAll: true}, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, []string{"전북", "카페"}, monitor.keywords)
	assert.Len(t, monitor.scores, 3)
	assert.Equal(t, 1, monitor.keywordHits, "only the 카페 program survives")
	assert.Equal(t, 1, monitor.regionRejects, "the 서울 program is region-rejected")
	assert.True(t, monitor.finished)
}
