package retrieval

import (
	"math"
	"testing"

	"github.com/keepstack/keepstack/internal/domain"
)

const epsilon = 1e-9

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"empty a", nil, []float32{1, 2}, 0},
		{"empty b", []float32{1, 2}, nil, 0},
		{"dimension mismatch", []float32{1, 2, 3}, []float32{1, 2}, 0},
		{"zero norm", []float32{0, 0}, []float32{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosine_Bounds(t *testing.T) {
	vectors := [][]float32{
		{0.3, -0.7, 0.2},
		{1, 1, 1},
		{-2.5, 0.1, 4},
		{0.001, 0.002, -0.003},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			got := Cosine(a, b)
			if got < -1-epsilon || got > 1+epsilon {
				t.Errorf("Cosine(%v, %v) = %v out of [-1, 1]", a, b, got)
			}
		}
	}
}

func record(id string, vec []float32) domain.EmbeddingRecord {
	return domain.EmbeddingRecord{
		ItemID:   id,
		Vector:   vec,
		Metadata: domain.Metadata{Title: id},
	}
}

func TestRank_ThresholdAndOrder(t *testing.T) {
	query := []float32{1, 0, 0}
	records := []domain.EmbeddingRecord{
		record("budgeting", []float32{0.05, 1, 0}), // sim ~0.05
		record("fitness", []float32{1, 0.8, 0}),    // sim ~0.78
		record("pasta", []float32{0.21, 1, 0}),     // sim ~0.21
	}

	matches := Rank(query, records)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match above threshold, got %d", len(matches))
	}
	if matches[0].Record.ItemID != "fitness" {
		t.Errorf("expected fitness record, got %s", matches[0].Record.ItemID)
	}
	for _, m := range matches {
		if m.Score <= RelevanceThreshold {
			t.Errorf("match %s score %v violates threshold", m.Record.ItemID, m.Score)
		}
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	query := []float32{1, 0}
	records := []domain.EmbeddingRecord{
		record("mid", []float32{1, 1}),      // ~0.71
		record("best", []float32{1, 0.1}),   // ~0.995
		record("worst", []float32{1, 1.5}),  // ~0.55
	}

	matches := Rank(query, records)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	want := []string{"best", "mid", "worst"}
	for i, id := range want {
		if matches[i].Record.ItemID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, matches[i].Record.ItemID)
		}
	}
}

func TestRank_TopKCap(t *testing.T) {
	query := []float32{1, 0}
	var records []domain.EmbeddingRecord
	for i := 0; i < 12; i++ {
		records = append(records, record(string(rune('a'+i)), []float32{1, 0.01 * float32(i)}))
	}

	matches := Rank(query, records)
	if len(matches) != TopK {
		t.Fatalf("expected %d matches, got %d", TopK, len(matches))
	}
}

func TestRank_NoMatches(t *testing.T) {
	query := []float32{1, 0}
	records := []domain.EmbeddingRecord{
		record("unrelated", []float32{0, 1}),
	}

	matches := Rank(query, records)
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestRank_MismatchedDimensionsSkipped(t *testing.T) {
	query := []float32{1, 0}
	records := []domain.EmbeddingRecord{
		record("stale", []float32{1, 0, 0}), // different model dims
		record("ok", []float32{1, 0.1}),
	}

	matches := Rank(query, records)
	if len(matches) != 1 || matches[0].Record.ItemID != "ok" {
		t.Fatalf("expected only the matching-dimension record, got %+v", matches)
	}
}
