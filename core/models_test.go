package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("소상공인 경영안정자금 지원사업")
		b := IDFromContent("소상공인 경영안정자금 지원사업")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := IDFromContent("청년 창업지원 프로그램")
		b := IDFromContent("시니어 창업 아카데미")
		assert.NotEqual(t, a, b)
	})
}

func TestProgramSearchText(t *testing.T) {
	t.Run("joins fields in contract order", func(t *testing.T) {
		p := Program{
			Title:       "카페 마케팅 지원",
			Description: "온라인 판로 개척",
			Target:      "소상공인",
			Category:    "마케팅",
			Agency:      "중소벤처기업부",
		}
		assert.Equal(t, "카페 마케팅 지원 온라인 판로 개척 소상공인 마케팅 중소벤처기업부", p.SearchText())
	})

	t.Run("skips empty fields", func(t *testing.T) {
		p := Program{Title: "창업 교육", Agency: "소진공"}
		assert.Equal(t, "창업 교육 소진공", p.SearchText())
	})

	t.Run("all empty", func(t *testing.T) {
		p := Program{}
		assert.Equal(t, "", p.SearchText())
	})
}
