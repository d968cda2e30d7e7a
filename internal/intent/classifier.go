// Package intent classifies a raw user utterance into the small set of
// follow-up intents the conversation can branch on, and extracts which
// already-known breed the utterance refers to.
package intent

import (
	"sort"
	"strings"
)

// Intent is the discrete category of a user utterance.
type Intent int

const (
	// None means the utterance asks for neither auxiliary content kind.
	None Intent = iota
	// Post asks for a social media caption with a photo.
	Post
	// Video asks for a short looping clip.
	Video
)

func (i Intent) String() string {
	switch i {
	case Post:
		return "post"
	case Video:
		return "video"
	default:
		return "none"
	}
}

// Keyword families, checked as case-insensitive substrings. Substring
// matching is deliberately permissive: a keyword inside a larger word still
// counts. Video is checked first and wins when both families are present.
var (
	videoKeywords = []string{"video", "gif", "animated", "animation", "loop", "mp4"}
	postKeywords  = []string{"post", "caption", "instagram", "content", "story", "reel"}
)

// Classify inspects an utterance and returns its intent. Pure and
// stateless.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, kw := range videoKeywords {
		if strings.Contains(lowered, kw) {
			return Video
		}
	}
	for _, kw := range postKeywords {
		if strings.Contains(lowered, kw) {
			return Post
		}
	}
	return None
}

// ExtractBreed scans the utterance for a known canonical breed name,
// case-insensitively. When several names match, the longest wins, so a
// short name never shadows a longer compound one ("Terrier" vs
// "Jack Russell Terrier"). Returns the canonical (original-cased) name.
func ExtractBreed(text string, canonical []string) (string, bool) {
	lowered := strings.ToLower(text)

	byLength := make([]string, len(canonical))
	copy(byLength, canonical)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})

	for _, name := range byLength {
		if name != "" && strings.Contains(lowered, strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}
