// Package rank scores breeds against an encoded user vector by cosine
// similarity and returns the best matches.
package rank

import (
	"math"
	"sort"
)

// DefaultTopN is the number of breeds returned when the caller does not ask
// for a specific count.
const DefaultTopN = 3

// RankedBreed is one scored result. Score is in [-1, 1]; with non-negative
// encoded features it stays in [0, 1] in practice.
type RankedBreed struct {
	Name  string
	Score float64
}

// Cosine computes cosine similarity between two vectors. A zero-norm vector
// (or a dimension mismatch) yields 0 rather than dividing by zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Rank scores every row of the breed matrix against the user vector and
// returns the top n breeds, best first. Ties keep the original table order
// (stable sort), so identical inputs always produce identical output. Rank
// is pure: it does no I/O and holds no state. A non-positive n falls back
// to DefaultTopN.
func Rank(user []float64, names []string, matrix [][]float64, n int) []RankedBreed {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]RankedBreed, len(matrix))
	for i, row := range matrix {
		ranked[i] = RankedBreed{Name: names[i], Score: Cosine(user, row)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
