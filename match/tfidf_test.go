package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFScorer_Score(t *testing.T) {
	scorer := NewTFIDFScorer()
	ctx := context.Background()

	t.Run("empty candidate list", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 마케팅", nil)
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("parallel output", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 마케팅", []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Len(t, scores, 3)
	})

	t.Run("identical text scores one", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 온라인 마케팅", []string{"카페 온라인 마케팅"})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, scores[0], 1e-9)
	})

	t.Run("scores bounded", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 온라인 마케팅 지원", []string{
			"카페 마케팅 지원사업",
			"제조업 스마트공장 구축",
			"",
		})
		require.NoError(t, err)
		for _, s := range scores {
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	})

	t.Run("overlapping text outranks unrelated text", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 온라인 마케팅", []string{
			"소상공인 카페 온라인 마케팅 지원",
			"축산 농가 시설 현대화",
		})
		require.NoError(t, err)
		assert.Greater(t, scores[0], scores[1])
	})

	t.Run("deterministic", func(t *testing.T) {
		texts := []string{"카페 마케팅 지원", "청년 창업 교육", "수출 바우처"}
		first, err := scorer.Score(ctx, "온라인 마케팅이 필요한 카페", texts)
		require.NoError(t, err)
		second, err := scorer.Score(ctx, "온라인 마케팅이 필요한 카페", texts)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty document scores zero", func(t *testing.T) {
		scores, err := scorer.Score(ctx, "카페 마케팅", []string{""})
		require.NoError(t, err)
		assert.Zero(t, scores[0])
	})
}

func TestTFIDFScorer_ngrams(t *testing.T) {
	scorer := NewTFIDFScorer()

	t.Run("pads word boundaries", func(t *testing.T) {
		grams := scorer.ngrams("카페")
		// " 카페 " yields 2-grams " 카", "카페", "페 " among others.
		assert.Contains(t, grams, " 카")
		assert.Contains(t, grams, "카페")
		assert.Contains(t, grams, "페 ")
		assert.Contains(t, grams, " 카페 ")
	})

	t.Run("single-rune word contributes padded form", func(t *testing.T) {
		grams := scorer.ngrams("꽃")
		assert.Contains(t, grams, " 꽃")
		assert.Contains(t, grams, " 꽃 ")
	})

	t.Run("lowercases", func(t *testing.T) {
		grams := scorer.ngrams("IT")
		assert.Contains(t, grams, "it")
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, scorer.ngrams(""))
	})
}

func TestSelectVocabulary(t *testing.T) {
	t.Run("keeps everything under the cap", func(t *testing.T) {
		counts := map[string]float64{"aa": 3, "bb": 1}
		vocab := selectVocabulary(counts, 10)
		assert.Len(t, vocab, 2)
	})

	t.Run("cuts by frequency with lexicographic ties", func(t *testing.T) {
		counts := map[string]float64{"aa": 5, "bb": 2, "cc": 2, "dd": 1}
		vocab := selectVocabulary(counts, 2)
		assert.True(t, vocab["aa"])
		assert.True(t, vocab["bb"])
		assert.False(t, vocab["cc"])
		assert.False(t, vocab["dd"])
	})
}
