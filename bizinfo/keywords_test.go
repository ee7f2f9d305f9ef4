package bizinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchKeywords(t *testing.T) {
	tests := []struct {
		name    string
		profile SearchProfile
		want    []string
	}{
		{
			name:    "no criteria falls back to the generic query",
			profile: SearchProfile{},
			want:    []string{"소상공인"},
		},
		{
			name:    "age bracket maps to its keyword",
			profile: SearchProfile{AgeGroup: "청년 (만 39세 이하)"},
			want:    []string{"청년"},
		},
		{
			name:    "senior bracket",
			profile: SearchProfile{AgeGroup: "시니어 (만 60세 이상)"},
			want:    []string{"시니어"},
		},
		{
			name:    "business type is used verbatim",
			profile: SearchProfile{BusinessType: "카페"},
			want:    []string{"카페"},
		},
		{
			name:    "region scopes the small-business query",
			profile: SearchProfile{Region: "전북"},
			want:    []string{"소상공인 전북"},
		},
		{
			name:    "nationwide region adds nothing",
			profile: SearchProfile{Region: "전국"},
			want:    []string{"소상공인"},
		},
		{
			name: "priority order: age, business type, region",
			profile: SearchProfile{
				AgeGroup:     "중장년 (만 40~59세)",
				BusinessType: "음식점",
				Region:       "경기",
			},
			want: []string{"중장년", "음식점", "소상공인 경기"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSearchKeywords(tt.profile))
		})
	}
}

func TestSamplePrograms(t *testing.T) {
	programs := SamplePrograms()
	assert.NotEmpty(t, programs)
	for _, p := range programs {
		assert.NotZero(t, p.Id, "sample records carry derived ids")
		assert.Contains(t, p.Title, "[테스트]")
		assert.NotEmpty(t, p.Link)
	}
}
