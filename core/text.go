package core

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Common entities seen in upstream announcement text.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&middot;", "·",
	"&hellip;", "...",
)

// NormalizeText strips markup from a free-text field and collapses internal
// whitespace runs to single spaces. Stripping is best-effort pattern matching,
// not a markup-tree parse; malformed markup never causes an error. The result
// is NFC-normalized so that visually identical Hangul compares equal.
// Empty input returns the empty string.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = tagPattern.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return norm.NFC.String(strings.TrimSpace(s))
}
