// Package feature projects breed records and user preference profiles into
// a shared numeric feature space for similarity comparison.
//
// The space is fitted exactly once, over the full breed table: numeric
// traits are standardized with per-column mean/scale, coat length is
// ordinal-encoded, and coat type is one-hot encoded with the first observed
// category dropped as the baseline. Column order is frozen at fit time —
// every later encode reuses the same statistics and layout, otherwise
// similarity scores across breeds would not be comparable.
package feature

import (
	"fmt"
	"math"
	"sort"

	"pawmatch/internal/breed"
)

// Coat length ordinal codes. An unrecognized value falls back to Medium so
// a survey answer is always encodable.
const (
	coatLengthShort  = 1.0
	coatLengthMedium = 2.0
	coatLengthLong   = 3.0
)

const coatTypePrefix = "Coat_Type_"

// EncodingError reports a preference profile that cannot be projected into
// the fitted space (missing numeric trait). Categorical values never cause
// this: coat length defaults to Medium and an unknown coat type encodes as
// the baseline.
type EncodingError struct {
	Trait  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode preference profile: trait %q %s", e.Trait, e.Reason)
}

// Profile is a single user preference record, extracted from the dialogue
// payload. It must carry a value for every numeric trait of the fitted
// space plus the two coat preferences.
type Profile struct {
	Traits     map[string]float64
	CoatLength string
	CoatType   string
}

// Space is the fitted feature space: standardization statistics for the
// numeric traits and the frozen one-hot layout for coat type.
type Space struct {
	TraitNames []string  // numeric trait columns, table order
	Means      []float64 // per-trait mean over the full table
	Scales     []float64 // per-trait std deviation (1 for constant columns)
	Baseline   string    // dropped coat type category (origin of the one-hot block)
	CoatTypes  []string  // remaining coat type categories, sorted
}

// Fit computes the feature space over the full breed table.
func Fit(table *breed.Table) (*Space, error) {
	if table == nil || len(table.Records) == 0 {
		return nil, fmt.Errorf("cannot fit feature space on empty breed table")
	}

	n := float64(len(table.Records))
	means := make([]float64, len(table.TraitNames))
	scales := make([]float64, len(table.TraitNames))
	for i := range table.TraitNames {
		var sum float64
		for _, rec := range table.Records {
			sum += float64(rec.Scores[i])
		}
		means[i] = sum / n

		var sq float64
		for _, rec := range table.Records {
			d := float64(rec.Scores[i]) - means[i]
			sq += d * d
		}
		scales[i] = math.Sqrt(sq / n)
		if scales[i] == 0 {
			// Constant column: center it but do not blow up the divide.
			scales[i] = 1
		}
	}

	seen := make(map[string]bool)
	var categories []string
	for _, rec := range table.Records {
		if !seen[rec.CoatType] {
			seen[rec.CoatType] = true
			categories = append(categories, rec.CoatType)
		}
	}
	sort.Strings(categories)

	return &Space{
		TraitNames: table.TraitNames,
		Means:      means,
		Scales:     scales,
		Baseline:   categories[0],
		CoatTypes:  categories[1:],
	}, nil
}

// Columns returns the frozen column layout of encoded vectors: numeric
// traits in table order, the coat length code, then the coat type
// indicator block.
func (s *Space) Columns() []string {
	cols := make([]string, 0, s.Dimensions())
	cols = append(cols, s.TraitNames...)
	cols = append(cols, "Coat_Length_Encoded")
	for _, cat := range s.CoatTypes {
		cols = append(cols, coatTypePrefix+cat)
	}
	return cols
}

// Dimensions returns the width of every vector this space produces.
func (s *Space) Dimensions() int {
	return len(s.TraitNames) + 1 + len(s.CoatTypes)
}

// EncodeBreed projects one breed record into the fitted space.
func (s *Space) EncodeBreed(rec breed.Record) []float64 {
	vec := make([]float64, 0, s.Dimensions())
	for i := range s.TraitNames {
		vec = append(vec, (float64(rec.Scores[i])-s.Means[i])/s.Scales[i])
	}
	vec = append(vec, coatLengthCode(rec.CoatLength))
	vec = append(vec, s.coatTypeIndicators(rec.CoatType)...)
	return vec
}

// EncodeTable projects every breed of the table, preserving row order.
// The resulting matrix is built once at start-up and shared read-only.
func (s *Space) EncodeTable(table *breed.Table) [][]float64 {
	matrix := make([][]float64, len(table.Records))
	for i, rec := range table.Records {
		matrix[i] = s.EncodeBreed(rec)
	}
	return matrix
}

// EncodeProfile projects a user preference profile into the fitted space.
// Every numeric trait of the space must be present in the profile.
func (s *Space) EncodeProfile(p Profile) ([]float64, error) {
	vec := make([]float64, 0, s.Dimensions())
	for i, name := range s.TraitNames {
		raw, ok := p.Traits[name]
		if !ok {
			return nil, &EncodingError{Trait: name, Reason: "is missing"}
		}
		vec = append(vec, (raw-s.Means[i])/s.Scales[i])
	}
	vec = append(vec, coatLengthCode(p.CoatLength))
	vec = append(vec, s.coatTypeIndicators(p.CoatType)...)
	return vec, nil
}

// coatTypeIndicators builds the one-hot block. A value equal to the dropped
// baseline (or unknown entirely) leaves every indicator at zero, which is
// the origin of the encoded block.
func (s *Space) coatTypeIndicators(coatType string) []float64 {
	indicators := make([]float64, len(s.CoatTypes))
	for i, cat := range s.CoatTypes {
		if cat == coatType {
			indicators[i] = 1
		}
	}
	return indicators
}

func coatLengthCode(v string) float64 {
	switch v {
	case "Short":
		return coatLengthShort
	case "Medium":
		return coatLengthMedium
	case "Long":
		return coatLengthLong
	default:
		return coatLengthMedium
	}
}
