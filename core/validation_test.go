package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProgram(t *testing.T) {
	t.Run("cleans text fields and assigns id", func(t *testing.T) {
		p := Program{
			Title:       " <b>경영안정자금</b>  지원사업 ",
			Description: "자금\n지원",
			Link:        " https://www.bizinfo.go.kr/detail ",
			StartDate:   " 2026-01-15 ",
		}
		NormalizeProgram(&p)

		assert.Equal(t, "경영안정자금 지원사업", p.Title)
		assert.Equal(t, "자금 지원", p.Description)
		assert.Equal(t, "https://www.bizinfo.go.kr/detail", p.Link)
		assert.Equal(t, "2026-01-15", p.StartDate)
		assert.Equal(t, IDFromContent("경영안정자금 지원사업"), p.Id)
	})

	t.Run("keeps existing id", func(t *testing.T) {
		p := Program{Id: 42, Title: "창업 교육"}
		NormalizeProgram(&p)
		assert.Equal(t, ID(42), p.Id)
	})

	t.Run("nil is a no-op", func(t *testing.T) {
		NormalizeProgram(nil)
	})
}

func TestValidateProgram(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := Program{Title: "소상공인 지원"}
		require.NoError(t, ValidateProgram(&p))
	})

	t.Run("nil program", func(t *testing.T) {
		err := ValidateProgram(nil)
		assert.ErrorIs(t, err, ErrInvalidProgram)
	})

	t.Run("empty title", func(t *testing.T) {
		err := ValidateProgram(&Program{Description: "내용만 있음"})
		assert.ErrorIs(t, err, ErrInvalidProgram)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}
