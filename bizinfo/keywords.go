package bizinfo

import "strings"

// maxSearchKeywords bounds how many listing requests one profile fans
// out into.
const maxSearchKeywords = 4

// SearchProfile is the structural side of a search: the user's selected
// criteria rather than free text. Empty fields mean "no preference".
type SearchProfile struct {
	AgeGroup     string
	BusinessType string
	Region       string
}

// BuildSearchKeywords derives the portal search keywords for a profile,
// in priority order: age bracket, business type, then a region-scoped
// small-business query. With no criteria at all it falls back to the
// generic 소상공인 (small business owner) query.
func BuildSearchKeywords(profile SearchProfile) []string {
	var keywords []string

	switch {
	case strings.Contains(profile.AgeGroup, "청년"):
		keywords = append(keywords, "청년")
	case strings.Contains(profile.AgeGroup, "중장년"):
		keywords = append(keywords, "중장년")
	case strings.Contains(profile.AgeGroup, "시니어"):
		keywords = append(keywords, "시니어")
	}

	if profile.BusinessType != "" {
		keywords = append(keywords, profile.BusinessType)
	}

	if profile.Region != "" && profile.Region != "전국" {
		keywords = append(keywords, "소상공인 "+profile.Region)
	}

	if len(keywords) == 0 {
		keywords = append(keywords, "소상공인")
	}

	if len(keywords) > maxSearchKeywords {
		keywords = keywords[:maxSearchKeywords]
	}
	return keywords
}
