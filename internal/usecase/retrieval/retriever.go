// Package retrieval ranks stored embedding records against a query vector
// by cosine similarity. The store holds tens to hundreds of records per
// user, so a full scan is the right tool; there is no ANN index here.
package retrieval

import (
	"math"
	"sort"

	"github.com/keepstack/keepstack/internal/domain"
)

const (
	// RelevanceThreshold is the minimum similarity (exclusive) for a
	// record to count as a match.
	RelevanceThreshold = 0.3
	// TopK caps the number of returned matches.
	TopK = 5
)

// Match pairs a stored record with its similarity to the query.
type Match struct {
	Record domain.EmbeddingRecord
	Score  float64
}

// Rank scores every record against the query vector, keeps matches with
// similarity strictly above RelevanceThreshold, and returns the top TopK
// in descending score order. An empty result is a normal outcome, not an
// error: it signals the caller to try a weaker context source.
func Rank(queryVec []float32, records []domain.EmbeddingRecord) []Match {
	matches := make([]Match, 0, len(records))
	for _, rec := range records {
		score := Cosine(queryVec, rec.Vector)
		if score > RelevanceThreshold {
			matches = append(matches, Match{Record: rec, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > TopK {
		matches = matches[:TopK]
	}
	return matches
}

// Cosine returns dot(a,b) / (||a||*||b||) in [-1, 1]. It returns 0 for
// empty, zero-norm, or dimension-mismatched vectors: a mismatch means the
// store holds records from a different embedding model and must degrade
// the query, not crash it.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
