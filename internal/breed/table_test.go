package breed

import (
	"strings"
	"testing"
)

// The first breed name carries the non-breaking space the source dataset
// uses between a name and its parenthetical qualifier.
const sampleCSV = "Breed,Affectionate With Family,Good With Other Dogs,Shedding Level,Coat Type,Coat Length\n" +
	"Retrievers\u00a0(Labrador),5,5,4,Double,Short\n" +
	"French Bulldogs,5,4,3,Smooth,Short\n" +
	"Poodles,5,3,1,Curly,Long\n"

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	wantTraits := []string{"Affectionate With Family", "Good With Other Dogs", "Shedding Level"}
	if len(table.TraitNames) != len(wantTraits) {
		t.Fatalf("got %d trait columns, want %d", len(table.TraitNames), len(wantTraits))
	}
	for i, name := range wantTraits {
		if table.TraitNames[i] != name {
			t.Errorf("trait %d = %q, want %q", i, table.TraitNames[i], name)
		}
	}

	if len(table.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(table.Records))
	}

	// The non-breaking space in the source name is replaced.
	if got := table.Records[0].Name; got != "Retrievers (Labrador)" {
		t.Errorf("record 0 name = %q", got)
	}

	rec := table.Records[2]
	if rec.CoatType != "Curly" || rec.CoatLength != "Long" {
		t.Errorf("record 2 coat = (%q, %q)", rec.CoatType, rec.CoatLength)
	}
	if rec.Scores[2] != 1 {
		t.Errorf("record 2 shedding score = %d, want 1", rec.Scores[2])
	}
}

func TestParseTableRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"no breed column":   "Name,Coat Type,Coat Length\nx,Smooth,Short\n",
		"no coat columns":   "Breed,Energy Level\nx,3\n",
		"non-numeric trait": "Breed,Energy Level,Coat Type,Coat Length\nx,high,Smooth,Short\n",
		"empty table":       "Breed,Energy Level,Coat Type,Coat Length\n",
	}
	for name, csv := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseTable(strings.NewReader(csv)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	table, err := ParseTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	rec, ok := table.Lookup("French Bulldogs")
	if !ok || rec.Name != "French Bulldogs" {
		t.Fatalf("Lookup(French Bulldogs) = (%v, %v)", rec, ok)
	}

	// Lookup tolerates the raw dataset spelling with a non-breaking space.
	if _, ok := table.Lookup("Retrievers\u00a0(Labrador)"); !ok {
		t.Error("Lookup with non-breaking space failed")
	}

	if _, ok := table.Lookup("Chupacabra"); ok {
		t.Error("Lookup of unknown breed succeeded")
	}
}

func TestNamesPreservesOrder(t *testing.T) {
	table, err := ParseTable(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	names := table.Names()
	want := []string{"Retrievers (Labrador)", "French Bulldogs", "Poodles"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseDescriptions(t *testing.T) {
	csv := "Trait,Description\nEnergy Level,How much exercise the breed needs.\nBarking Level,How vocal the breed is.\n"
	descs, err := ParseDescriptions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseDescriptions: %v", err)
	}
	if got := descs["Energy Level"]; got != "How much exercise the breed needs." {
		t.Errorf("Energy Level description = %q", got)
	}
	if len(descs) != 2 {
		t.Errorf("got %d descriptions, want 2", len(descs))
	}
}

func TestParseDescriptionsRequiresColumns(t *testing.T) {
	if _, err := ParseDescriptions(strings.NewReader("Trait,Text\nx,y\n")); err == nil {
		t.Fatal("expected error for missing Description column")
	}
}
