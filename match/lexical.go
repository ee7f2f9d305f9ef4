package match

import "strings"

// MatchKeywords returns the subset of query keywords contained in the
// composite text, preserving query order. Comparison is case-insensitive
// substring containment, never exact token equality, so a keyword like
// "마케팅" matches inside "온라인마케팅 교육".
func MatchKeywords(keywords []string, composite string) []string {
	compositeLower := strings.ToLower(composite)

	var matched []string
	for _, kw := range keywords {
		if strings.Contains(compositeLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}
