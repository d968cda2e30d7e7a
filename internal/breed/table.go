// Package breed loads the canonical breed trait table and the trait
// description lookup. Both are read once at process start and treated as
// immutable afterwards; every downstream component (feature space, ranker,
// identity map) is fitted against this single load.
package breed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names with special handling in the trait table.
const (
	ColumnBreed      = "Breed"
	ColumnCoatLength = "Coat Length"
	ColumnCoatType   = "Coat Type"
)

// Record is one row of the trait table: a breed's numeric trait scores
// (aligned with Table.TraitNames) plus its two categorical coat columns.
type Record struct {
	Name       string
	Scores     []int
	CoatLength string
	CoatType   string
}

// Table is the full breed trait table. Row order is preserved from the
// source file because ranking ties break by original table order.
type Table struct {
	TraitNames []string // numeric trait columns, in table order
	Records    []Record
	byName     map[string]int
}

// CleanName strips the non-breaking spaces the source dataset carries in
// some breed names and trims surrounding whitespace.
func CleanName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "\u00a0", " "))
}

// LoadTable reads the breed trait table from a CSV file.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open breed table: %w", err)
	}
	defer f.Close()
	return ParseTable(f)
}

// ParseTable reads the breed trait table from CSV data. The header must
// contain a Breed column and the two coat columns; every other column is
// treated as a numeric trait, in header order.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read breed table header: %w", err)
	}

	breedIdx, lengthIdx, typeIdx := -1, -1, -1
	var traitNames []string
	var traitIdx []int
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case ColumnBreed:
			breedIdx = i
		case ColumnCoatLength:
			lengthIdx = i
		case ColumnCoatType:
			typeIdx = i
		default:
			traitNames = append(traitNames, strings.TrimSpace(col))
			traitIdx = append(traitIdx, i)
		}
	}
	if breedIdx < 0 {
		return nil, fmt.Errorf("breed table missing %q column", ColumnBreed)
	}
	if lengthIdx < 0 || typeIdx < 0 {
		return nil, fmt.Errorf("breed table missing %q or %q column", ColumnCoatLength, ColumnCoatType)
	}

	t := &Table{
		TraitNames: traitNames,
		byName:     make(map[string]int),
	}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read breed table row: %w", err)
		}

		rec := Record{
			Name:       CleanName(row[breedIdx]),
			Scores:     make([]int, len(traitIdx)),
			CoatLength: strings.TrimSpace(row[lengthIdx]),
			CoatType:   strings.TrimSpace(row[typeIdx]),
		}
		for j, idx := range traitIdx {
			score, err := strconv.Atoi(strings.TrimSpace(row[idx]))
			if err != nil {
				return nil, fmt.Errorf("line %d: trait %q is not numeric: %w", line, traitNames[j], err)
			}
			rec.Scores[j] = score
		}
		t.byName[rec.Name] = len(t.Records)
		t.Records = append(t.Records, rec)
	}
	if len(t.Records) == 0 {
		return nil, fmt.Errorf("breed table is empty")
	}
	return t, nil
}

// Lookup returns the record for a canonical breed name.
func (t *Table) Lookup(name string) (Record, bool) {
	idx, ok := t.byName[CleanName(name)]
	if !ok {
		return Record{}, false
	}
	return t.Records[idx], true
}

// Names returns the canonical breed names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Records))
	for i, rec := range t.Records {
		names[i] = rec.Name
	}
	return names
}

// LoadDescriptions reads the trait description table (Trait,Description)
// from a CSV file into a lookup map.
func LoadDescriptions(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trait descriptions: %w", err)
	}
	defer f.Close()
	return ParseDescriptions(f)
}

// ParseDescriptions reads the trait description table from CSV data.
func ParseDescriptions(r io.Reader) (map[string]string, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read trait description header: %w", err)
	}
	traitIdx, descIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Trait":
			traitIdx = i
		case "Description":
			descIdx = i
		}
	}
	if traitIdx < 0 || descIdx < 0 {
		return nil, fmt.Errorf("trait description table must have Trait and Description columns")
	}

	descriptions := make(map[string]string)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read trait description row: %w", err)
		}
		descriptions[strings.TrimSpace(row[traitIdx])] = strings.TrimSpace(row[descIdx])
	}
	return descriptions, nil
}
