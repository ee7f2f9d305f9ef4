package match

import "strings"

// Stop words carry no search signal: pronouns, copulas, connective particles,
// and generic domain filler that appears in nearly every announcement.
var stopWords = map[string]bool{
	"저는": true, "저": true, "나는": true, "나": true, "있는": true,
	"하는": true, "있어요": true, "합니다": true, "해요": true,
	"싶어요": true, "싶습니다": true, "있습니다": true, "입니다": true,
	"에서": true, "으로": true, "이고": true, "하고": true, "그리고": true,
	"또한": true, "위해": true, "통해": true, "대한": true, "관한": true,
	"에게": true, "지원사업": true, "지원": true, "사업": true, "소상공인": true,
}

var queryReplacer = strings.NewReplacer(",", " ", ".", " ")

// ExtractKeywords tokenizes a user query into search keywords. Commas and
// periods are treated as spaces, tokens shorter than two runes and stop
// words are dropped, and duplicates are removed keeping the first
// occurrence. No stemming: downstream matching is substring containment,
// so partial compounds still match.
func ExtractKeywords(query string) []string {
	words := strings.Fields(queryReplacer.Replace(query))

	keywords := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		if len([]rune(word)) < 2 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	return keywords
}
