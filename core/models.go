package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which is how
// programs fetched under several search keywords are deduplicated.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Program represents a single government support-program announcement.
// All fields except the dates are free text and may be empty; upstream
// records with missing fields are coerced to empty strings rather than
// rejected.
type Program struct {
	Id          ID
	Title       string
	Description string
	Target      string // Eligibility text
	Category    string
	Agency      string
	Link        string
	StartDate   string // Application window start, free-form date text
	EndDate     string // Application window end, free-form date text
}

// SearchText returns the composite text used for keyword matching and
// similarity scoring: title, description, target, category and agency,
// non-empty parts joined with single spaces, in that order.
// Callers should compute this once per record and reuse it; the field order
// is part of the scoring contract.
func (p *Program) SearchText() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{p.Title, p.Description, p.Target, p.Category, p.Agency} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// MatchResult carries the ranking signals derived for one candidate during a
// single ranking call. It never mutates the source Program; a fresh
// MatchResult is produced per call and discarded once the caller consumes
// the ranked list.
type MatchResult struct {
	SimilarityScore float64  // Raw similarity in [0,1], pre-fusion
	FinalScore      float64  // Post-fusion score in [0,1], drives sort order
	MatchedKeywords []string // Query keywords found in the composite text, in query order
	MatchedCount    int
	TotalKeywords   int  // Number of keywords extracted from the query
	IsExactMatch    bool // Whether the tier's matched-keyword criteria are satisfied
	RegionMatched   bool // Whether the region compatibility test passed (all-match mode)
}

// RankedProgram pairs an unmodified Program with the match signals derived
// for it. The Program is copied by value so the input catalog stays immutable.
type RankedProgram struct {
	Program Program
	Match   MatchResult
}
