package rank

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical direction", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"dimension mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cosine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineBounds(t *testing.T) {
	a := []float64{0.3, -1.7, 2.2, 0.01}
	b := []float64{-2.1, 0.4, 1.3, 5.5}
	got := Cosine(a, b)
	if got < -1-1e-12 || got > 1+1e-12 {
		t.Errorf("Cosine = %v, outside [-1, 1]", got)
	}
}

func TestRankOrdering(t *testing.T) {
	user := []float64{1, 0, 0}
	names := []string{"far", "close", "closest"}
	matrix := [][]float64{
		{0, 1, 0},       // orthogonal
		{1, 1, 0},       // 45 degrees
		{0.9, 0.1, 0.1}, // nearly aligned
	}

	ranked := Rank(user, names, matrix, 3)
	if len(ranked) != 3 {
		t.Fatalf("got %d results, want 3", len(ranked))
	}
	wantOrder := []string{"closest", "close", "far"}
	for i, want := range wantOrder {
		if ranked[i].Name != want {
			t.Errorf("rank %d = %q, want %q", i, ranked[i].Name, want)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRankTiesKeepTableOrder(t *testing.T) {
	user := []float64{1, 1}
	names := []string{"first", "second", "third"}
	row := []float64{2, 2} // same direction, same score, for every breed
	matrix := [][]float64{row, row, row}

	ranked := Rank(user, names, matrix, 3)
	for i, want := range names {
		if ranked[i].Name != want {
			t.Errorf("tie order broken: rank %d = %q, want %q", i, ranked[i].Name, want)
		}
	}
}

func TestRankTopNClamping(t *testing.T) {
	user := []float64{1}
	names := []string{"a", "b"}
	matrix := [][]float64{{1}, {2}}

	if got := Rank(user, names, matrix, 10); len(got) != 2 {
		t.Errorf("n beyond table size: got %d results, want 2", len(got))
	}
	if got := Rank(user, names, matrix, 0); len(got) != 2 {
		// DefaultTopN is 3, clamped to the table size.
		t.Errorf("n=0: got %d results, want 2", len(got))
	}
	if got := Rank(user, names, matrix, 1); len(got) != 1 {
		t.Errorf("n=1: got %d results, want 1", len(got))
	}
}

func TestRankIsDeterministic(t *testing.T) {
	user := []float64{0.5, 1.5, -0.5}
	names := []string{"a", "b", "c", "d"}
	matrix := [][]float64{
		{1, 2, 3},
		{0.5, 1.5, -0.5},
		{-1, -2, -3},
		{2, 2, 2},
	}
	first := Rank(user, names, matrix, 4)
	for range 5 {
		again := Rank(user, names, matrix, 4)
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("rank %d differs across runs: %+v vs %+v", i, again[i], first[i])
			}
		}
	}
}
