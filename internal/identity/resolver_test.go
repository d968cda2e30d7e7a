package identity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMapAutoPass(t *testing.T) {
	canonical := []string{"Beagles", "Pembroke Welsh Corgis", "Xoloitzcuintli"}
	folders := []string{"beagle dog", "pembroke welsh corgi dog"}

	m := BuildMap(canonical, folders, nil, nil)

	want := Map{
		"Beagles":               "beagle dog",
		"Pembroke Welsh Corgis": "pembroke welsh corgi dog",
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMapOverridesWin(t *testing.T) {
	canonical := []string{"Russell Terriers"}
	folders := []string{"russell terrier dog"}
	overrides := map[string]string{
		"Russell Terriers": "jack russell terrier dog",
	}

	m := BuildMap(canonical, folders, overrides, nil)
	if got := m["Russell Terriers"]; got != "jack russell terrier dog" {
		t.Errorf("override did not win: got %q", got)
	}
}

func TestBuildMapOverrideFillsGap(t *testing.T) {
	canonical := []string{"Xoloitzcuintli"}
	overrides := map[string]string{
		"Xoloitzcuintli": "mexican hairless dog",
	}

	m := BuildMap(canonical, nil, overrides, nil)
	if got := m["Xoloitzcuintli"]; got != "mexican hairless dog" {
		t.Errorf("override gap fill failed: got %q", got)
	}
}

func TestBuildMapFirstFolderWinsOnCollision(t *testing.T) {
	canonical := []string{"Beagles"}
	// Both folders normalize to "beagle dog"; the first listed must win so
	// the map does not depend on listing order quirks.
	folders := []string{"Beagle Dog", "beagles"}

	m := BuildMap(canonical, folders, nil, nil)
	if got := m["Beagles"]; got != "Beagle Dog" {
		t.Errorf("collision winner = %q, want %q", got, "Beagle Dog")
	}
}

func TestBuildMapDeterministic(t *testing.T) {
	canonical := []string{"Beagles", "Poodles", "Havanese"}
	folders := []string{"poodle dog", "beagle dog", "havanese dog"}
	overrides := map[string]string{"Poodles": "standard poodle dog"}

	first := BuildMap(canonical, folders, overrides, nil)
	for range 5 {
		again := BuildMap(canonical, folders, overrides, nil)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("rebuild produced a different map:\n%s", diff)
		}
	}
}

func TestUnresolved(t *testing.T) {
	canonical := []string{"Beagles", "Mudis", "Pumik"}
	m := BuildMap(canonical, []string{"beagle dog"}, nil, nil)

	got := m.Unresolved(canonical)
	want := []string{"Mudis", "Pumik"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unresolved mismatch (-want +got):\n%s", diff)
	}

	if got := m.Unresolved([]string{"Beagles"}); got != nil {
		t.Errorf("Unresolved for fully mapped input = %v, want nil", got)
	}
}

func TestDefaultOverridesNotEmpty(t *testing.T) {
	if len(DefaultOverrides) == 0 {
		t.Fatal("DefaultOverrides is empty")
	}
	for name, key := range DefaultOverrides {
		if name == "" || key == "" {
			t.Errorf("override %q -> %q has an empty side", name, key)
		}
	}
}
