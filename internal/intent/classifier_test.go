package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"can you make a video of the beagle?", Video},
		{"show me a GIF please", Video},
		{"something animated would be fun", Video},
		{"a short loop of it running", Video},
		{"write an instagram post for the poodle", Post},
		{"I need a caption", Post},
		{"make some content for my story", Post},
		{"tell me more about grooming", None},
		{"", None},
		// Video wins when both keyword families are present.
		{"a video for my instagram post", Video},
		// Substring matching is deliberately permissive.
		{"that dog is a poster child", Post},
		{"CAPTION THIS", Post},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIntentString(t *testing.T) {
	if None.String() != "none" || Post.String() != "post" || Video.String() != "video" {
		t.Errorf("Intent.String() mapping broken: %q %q %q", None, Post, Video)
	}
}

func TestExtractBreed(t *testing.T) {
	canonical := []string{"Terriers", "Jack Russell Terriers", "Beagles", "Pugs"}

	tests := []struct {
		text      string
		wantName  string
		wantFound bool
	}{
		{"make a post about Jack Russell Terriers", "Jack Russell Terriers", true},
		// The longer compound name wins over its embedded short name.
		{"a video of jack russell terriers please", "Jack Russell Terriers", true},
		{"just terriers in general", "Terriers", true},
		{"I love my beagles so much", "Beagles", true},
		{"PUGS PUGS PUGS", "Pugs", true},
		{"a post about cats", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, found := ExtractBreed(tt.text, canonical)
			if got != tt.wantName || found != tt.wantFound {
				t.Errorf("ExtractBreed(%q) = (%q, %v), want (%q, %v)",
					tt.text, got, found, tt.wantName, tt.wantFound)
			}
		})
	}
}

func TestExtractBreedDoesNotMutateInput(t *testing.T) {
	canonical := []string{"Pugs", "Jack Russell Terriers", "Beagles"}
	ExtractBreed("beagles", canonical)
	want := []string{"Pugs", "Jack Russell Terriers", "Beagles"}
	for i := range want {
		if canonical[i] != want[i] {
			t.Fatalf("input slice reordered: %v", canonical)
		}
	}
}
