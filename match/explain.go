package match

import (
	"strings"

	"github.com/bizmatch/bizmatch/core"
)

// importantKeywords is the fixed vocabulary used for relevance explanations.
var importantKeywords = []string{
	"자금", "지원", "창업", "마케팅", "온라인", "디지털",
	"교육", "컨설팅", "수출", "기술", "인력", "청년", "중소기업",
}

// Explain returns a short human-readable justification for why a program is
// relevant to the raw query: up to three vocabulary terms that literally
// appear in both the query and the program's composite text, formatted as
// "매칭: a, b, c". Returns the empty string when nothing matches.
//
// This is purely explanatory; it is neither an input to nor derived from
// the ranking computation.
func Explain(query string, program *core.Program) string {
	if query == "" || program == nil {
		return ""
	}

	queryLower := strings.ToLower(query)
	compositeLower := strings.ToLower(program.SearchText())

	var matched []string
	for _, kw := range importantKeywords {
		if strings.Contains(queryLower, kw) && strings.Contains(compositeLower, kw) {
			matched = append(matched, kw)
			if len(matched) == 3 {
				break
			}
		}
	}

	if len(matched) == 0 {
		return ""
	}
	return "매칭: " + strings.Join(matched, ", ")
}
