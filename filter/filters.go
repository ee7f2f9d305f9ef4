package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/bizmatch/bizmatch/core"
)

// StatusFilter selects which application-window states pass ByStatus.
type StatusFilter string

const (
	// FilterActive keeps programs currently accepting applications.
	FilterActive StatusFilter = "active"
	// FilterUpcoming keeps programs whose window opens in the future.
	FilterUpcoming StatusFilter = "upcoming"
	// FilterAll disables status filtering.
	FilterAll StatusFilter = "all"
)

// Criteria is one structural filtering request. Zero values mean "no
// restriction" for every field.
type Criteria struct {
	AgeGroup     string
	Sido         string
	Sigungu      string
	BusinessType string
	Categories   []string
	Status       StatusFilter

	// Now anchors date comparisons; zero means time.Now().
	Now time.Time
}

// restrictionText is the portion of a record that states who may apply.
func restrictionText(p *core.Program) string {
	return p.Target + " " + p.Description
}

// ByAge keeps programs targeting the given age bracket, plus programs
// that state no age restriction at all.
func ByAge(programs []core.Program, ageGroup string) []core.Program {
	keywords, known := AgeGroups[ageGroup]
	if ageGroup == "" || !known {
		return programs
	}

	filtered := make([]core.Program, 0, len(programs))
	for i := range programs {
		text := strings.ToLower(restrictionText(&programs[i]))
		if containsAny(text, keywords) || !hasAgeRestriction(text) {
			filtered = append(filtered, programs[i])
		}
	}
	return filtered
}

func hasAgeRestriction(text string) bool {
	for _, keywords := range AgeGroups {
		if containsAny(text, keywords) {
			return true
		}
	}
	return false
}

// ByRegion keeps programs open to the given 시/도 (and optionally
// 시/군/구): nationwide programs, programs naming no region, and
// programs naming the requested one.
func ByRegion(programs []core.Program, sido, sigungu string) []core.Program {
	if sido == "" || sido == "전국" {
		return programs
	}

	filtered := make([]core.Program, 0, len(programs))
	for i := range programs {
		text := restrictionText(&programs[i])

		if strings.Contains(text, "전국") {
			filtered = append(filtered, programs[i])
			continue
		}
		if !hasRegionRestriction(text) {
			filtered = append(filtered, programs[i])
			continue
		}
		if !strings.Contains(text, sido) {
			continue
		}
		if sigungu != "" && sigungu != "전체" {
			if strings.Contains(text, sigungu) || strings.Contains(text, sido) {
				filtered = append(filtered, programs[i])
			}
			continue
		}
		filtered = append(filtered, programs[i])
	}
	return filtered
}

func hasRegionRestriction(text string) bool {
	for sido := range Regions {
		if strings.Contains(text, sido) {
			return true
		}
	}
	return false
}

// ByBusinessType keeps programs matching the business type's expanded
// keyword set, plus programs stating no business-type restriction.
// Unknown types are matched literally.
func ByBusinessType(programs []core.Program, businessType string) []core.Program {
	if businessType == "" {
		return programs
	}

	keywords, known := businessKeywords[businessType]
	if !known {
		keywords = []string{businessType}
	}
	if len(keywords) == 0 {
		return programs
	}

	filtered := make([]core.Program, 0, len(programs))
	for i := range programs {
		text := restrictionText(&programs[i])
		if containsAny(text, keywords) || !hasBusinessRestriction(text) {
			filtered = append(filtered, programs[i])
		}
	}
	return filtered
}

func hasBusinessRestriction(text string) bool {
	for _, keywords := range businessKeywords {
		if containsAny(text, keywords) {
			return true
		}
	}
	return false
}

// ByCategory keeps programs whose category matches any requested one.
// Programs with no stated category always pass.
func ByCategory(programs []core.Program, categories []string) []core.Program {
	if len(categories) == 0 {
		return programs
	}

	filtered := make([]core.Program, 0, len(programs))
	for i := range programs {
		category := programs[i].Category
		if category == "" || containsAny(category, categories) {
			filtered = append(filtered, programs[i])
		}
	}
	return filtered
}

// ByStatus keeps programs in the requested application-window state.
// Records without a parseable deadline always pass.
func ByStatus(programs []core.Program, status StatusFilter, now time.Time) []core.Program {
	if status == FilterAll || status == "" {
		return programs
	}
	if now.IsZero() {
		now = time.Now()
	}

	filtered := make([]core.Program, 0, len(programs))
	for i := range programs {
		s := StatusOf(programs[i].StartDate, programs[i].EndDate, now)
		switch status {
		case FilterActive:
			if s == StatusActive || s == StatusClosingSoon || s == StatusUnknown {
				filtered = append(filtered, programs[i])
			}
		case FilterUpcoming:
			if s == StatusUpcoming {
				filtered = append(filtered, programs[i])
			}
		}
	}
	return filtered
}

// Apply runs every configured filter in sequence and sorts the result
// by soonest deadline.
func Apply(programs []core.Program, c Criteria) []core.Program {
	result := programs
	result = ByAge(result, c.AgeGroup)
	result = ByRegion(result, c.Sido, c.Sigungu)
	result = ByBusinessType(result, c.BusinessType)
	result = ByCategory(result, c.Categories)

	status := c.Status
	if status == "" {
		status = FilterActive
	}
	result = ByStatus(result, status, c.Now)

	return SortByDeadline(result)
}

// SortByDeadline orders programs by ascending deadline. Records without
// a parseable deadline sort last. The input slice is not modified.
func SortByDeadline(programs []core.Program) []core.Program {
	sorted := make([]core.Program, len(programs))
	copy(sorted, programs)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iOK := ParseDate(sorted[i].EndDate)
		dj, jOK := ParseDate(sorted[j].EndDate)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return di.Before(dj)
	})
	return sorted
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
