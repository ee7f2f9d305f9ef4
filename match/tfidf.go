package match

import (
	"context"
	"math"
	"sort"
	"strings"
)

// TFIDFScorer scores query/candidate similarity with cosine distance over a
// tf-idf weighted character-n-gram vector space. N-grams are taken inside
// word boundaries, each word padded with a space on both sides, which works
// well for Korean compounds without any linguistic tokenization.
//
// The vector space is fit per invocation over {query} ∪ {candidate texts}
// and never persisted, because the candidate corpus changes on every call.
// Scoring is fully deterministic.
type TFIDFScorer struct {
	minN        int
	maxN        int
	maxFeatures int
}

// NewTFIDFScorer creates a sparse scorer with 2..4-character n-grams and a
// vocabulary capped at 10000 terms.
func NewTFIDFScorer() *TFIDFScorer {
	return &TFIDFScorer{minN: 2, maxN: 4, maxFeatures: 10000}
}

// Score implements Scorer. Tf-idf weights use raw term frequency and the
// smoothed inverse document frequency ln((1+N)/(1+df)) + 1; document vectors
// are L2-normalized, so cosine similarity reduces to a dot product and is
// non-negative by construction.
func (s *TFIDFScorer) Score(ctx context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return []float64{}, nil
	}

	corpus := make([]string, 0, len(texts)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, texts...)

	// Term frequencies per document, plus corpus-wide counts for the
	// vocabulary cut.
	termCounts := make([]map[string]float64, len(corpus))
	corpusCounts := make(map[string]float64)
	for i, doc := range corpus {
		tf := make(map[string]float64)
		for _, term := range s.ngrams(doc) {
			tf[term]++
			corpusCounts[term]++
		}
		termCounts[i] = tf
	}

	vocab := selectVocabulary(corpusCounts, s.maxFeatures)

	// Document frequency over the restricted vocabulary.
	df := make(map[string]int, len(vocab))
	for _, tf := range termCounts {
		for term := range tf {
			if vocab[term] {
				df[term]++
			}
		}
	}

	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	vectors := make([]map[string]float64, len(corpus))
	for i, tf := range termCounts {
		vectors[i] = weigh(tf, idf, vocab)
	}

	queryVector := vectors[0]
	scores := make([]float64, len(texts))
	for i := range texts {
		scores[i] = clamp01(dot(queryVector, vectors[i+1]))
	}
	return scores, nil
}

// ngrams extracts lowered character n-grams inside word boundaries. Words
// shorter than the window contribute their padded form once.
func (s *TFIDFScorer) ngrams(text string) []string {
	var grams []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		padded := []rune(" " + word + " ")
		for n := s.minN; n <= s.maxN; n++ {
			if len(padded) < n {
				grams = append(grams, string(padded))
				continue
			}
			for i := 0; i+n <= len(padded); i++ {
				grams = append(grams, string(padded[i:i+n]))
			}
		}
	}
	return grams
}

// selectVocabulary keeps the maxFeatures most frequent terms, breaking count
// ties lexicographically so the cut is deterministic.
func selectVocabulary(corpusCounts map[string]float64, maxFeatures int) map[string]bool {
	vocab := make(map[string]bool, len(corpusCounts))
	if len(corpusCounts) <= maxFeatures {
		for term := range corpusCounts {
			vocab[term] = true
		}
		return vocab
	}

	terms := make([]string, 0, len(corpusCounts))
	for term := range corpusCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if corpusCounts[terms[i]] != corpusCounts[terms[j]] {
			return corpusCounts[terms[i]] > corpusCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	for _, term := range terms[:maxFeatures] {
		vocab[term] = true
	}
	return vocab
}

// weigh builds the L2-normalized tf-idf vector for one document.
func weigh(tf map[string]float64, idf map[string]float64, vocab map[string]bool) map[string]float64 {
	vector := make(map[string]float64, len(tf))
	var sumSquares float64
	for term, count := range tf {
		if !vocab[term] {
			continue
		}
		w := count * idf[term]
		vector[term] = w
		sumSquares += w * w
	}
	if sumSquares == 0 {
		return vector
	}
	norm := math.Sqrt(sumSquares)
	for term := range vector {
		vector[term] /= norm
	}
	return vector
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			sum += wa * wb
		}
	}
	return sum
}
