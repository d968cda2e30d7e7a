package identity

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Beagle", "beagle dog"},
		{"already ends in dog", "Bernese Mountain Dog", "bernese mountain dog"},
		{"lowercases", "POODLE", "poodle dog"},
		{"plural stripped", "Terriers", "terrier dog"},
		{"plural four letters stripped", "Pugs", "pug dog"},
		{"short word keeps its s", "Les", "les dog"},
		{"parenthetical moves to front", "Pointers (German Shorthaired)", "german shorthaired pointer dog"},
		{"punctuation dropped", "Cirneco dell'Etna", "cirneco delletna dog"},
		{"hyphen dropped", "Chow-Chow", "chowchow dog"},
		{"whitespace collapsed", "  Great   Dane  ", "great dane dog"},
		{"parenthetical only", "(Basset)", "basset dog"},
		{"unbalanced paren", "Spaniel (Cocker", "cocker spaniel dog"},
		{"empty", "", "dog"},
		{"plural of the disambiguator", "Dogs", "dog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Retrievers (Labrador)",
		"Jack Russell Terriers",
		"Xoloitzcuintli",
		"Plott Hounds",
		"dog",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
