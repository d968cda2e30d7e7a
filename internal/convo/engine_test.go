package convo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmatch/internal/assets"
	"pawmatch/internal/breed"
	"pawmatch/internal/explain"
	"pawmatch/internal/feature"
	"pawmatch/internal/identity"
)

const engineCSV = "Breed,Energy Level,Barking Level,Coat Type,Coat Length\n" +
	"Beagles,5,5,Smooth,Short\n" +
	"Jack Russell Terriers,5,4,Smooth,Short\n" +
	"Greyhounds,2,1,Smooth,Short\n" +
	"Poodles,3,3,Curly,Long\n"

var engineDescriptions = map[string]string{
	"Energy Level":  "How much exercise the breed needs.",
	"Barking Level": "How vocal the breed is.",
}

// goodPayload encodes a profile identical to the Beagles row, so Beagles
// must rank first.
const goodPayload = "```json\n" +
	`{"Energy Level": 5, "Barking Level": 5, "Coat Length": "Short", "Coat Type": "Smooth"}` +
	"\n```"

// fakeCollab scripts the dialogue collaborator and records every prompt it
// was sent.
type fakeCollab struct {
	reply   func(prompt string) (string, error)
	prompts []string
}

func (f *fakeCollab) Send(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply(prompt)
}

// fakeAssets serves images and frames from in-memory maps; anything else is
// ErrNotFound, like the real source.
type fakeAssets struct {
	images map[string][]byte
	frames map[string][][]byte
}

func (f *fakeAssets) FetchImage(_ context.Context, key string) ([]byte, error) {
	if img, ok := f.images[key]; ok {
		return img, nil
	}
	return nil, assets.ErrNotFound
}

func (f *fakeAssets) FetchFrames(_ context.Context, key string, max int) ([][]byte, error) {
	frames, ok := f.frames[key]
	if !ok || len(frames) == 0 {
		return nil, assets.ErrNotFound
	}
	if len(frames) > max {
		frames = frames[:max]
	}
	return frames, nil
}

func newTestEngine(t *testing.T, collab *fakeCollab) *Engine {
	t.Helper()

	table, err := breed.ParseTable(strings.NewReader(engineCSV))
	require.NoError(t, err)
	space, err := feature.Fit(table)
	require.NoError(t, err)

	idMap := identity.Map{
		"Beagles":               "beagle dog",
		"Jack Russell Terriers": "jack russell terrier dog",
		"Greyhounds":            "greyhound dog",
		// Poodles deliberately unmapped: the identity map may have gaps.
	}
	source := &fakeAssets{
		images: map[string][]byte{
			"beagle dog":    []byte("beagle jpeg"),
			"greyhound dog": []byte("greyhound jpeg"),
		},
		frames: map[string][][]byte{
			"beagle dog": {[]byte("f1"), []byte("f2"), []byte("f3")},
		},
	}

	return NewEngine(EngineConfig{
		Collaborator: collab,
		Space:        space,
		Table:        table,
		Composer:     explain.NewComposer(table, engineDescriptions, 2, nil),
		Identity:     idMap,
		Assets:       source,
		TopN:         3,
	}, nil)
}

func TestSurveyTurnWithoutPayload(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Lovely! Do you live in an apartment or a house? 🐾", nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "hi there")

	assert.Equal(t, RoleAssistant, turn.Role)
	assert.Equal(t, "Lovely! Do you live in an apartment or a house? 🐾", turn.Text)
	assert.Empty(t, turn.Recommendations)
	assert.False(t, s.Recommended)
	require.Len(t, s.Turns, 2)
	assert.Equal(t, RoleUser, s.Turns[0].Role)
	assert.Equal(t, "hi there", s.Turns[0].Text)
}

func TestSurveyTurnDeliversRecommendations(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "All set! Here come your matches 🐾\n" + goodPayload, nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "energetic, vocal, short smooth coat")

	require.Len(t, turn.Recommendations, 3)
	assert.Equal(t, "Beagles", turn.Recommendations[0].Breed)
	assert.Equal(t, "All set! Here come your matches 🐾", turn.Text)
	assert.True(t, s.Recommended)

	for _, rec := range turn.Recommendations {
		assert.NotEmpty(t, rec.Explanation, "breed %s has no explanation", rec.Breed)
	}
	assert.Equal(t, []byte("beagle jpeg"), turn.Recommendations[0].Image)
}

func TestRecommendationUsesDefaultIntro(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return goodPayload, nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "done")
	assert.Equal(t, defaultRecommendationIntro, turn.Text)
	assert.True(t, s.Recommended)
}

func TestBreedWithoutAssetStillRecommended(t *testing.T) {
	// A profile matching the Poodles row; Poodles has no identity mapping,
	// so its recommendation must arrive with a nil image, not fail.
	payload := "```json\n" +
		`{"Energy Level": 3, "Barking Level": 3, "Coat Length": "Long", "Coat Type": "Curly"}` +
		"\n```"
	collab := &fakeCollab{reply: func(string) (string, error) {
		return payload, nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "calm and curly")

	require.Len(t, turn.Recommendations, 3)
	assert.Equal(t, "Poodles", turn.Recommendations[0].Breed)
	assert.Nil(t, turn.Recommendations[0].Image)
	assert.NotEmpty(t, turn.Recommendations[0].Explanation)
	assert.True(t, s.Recommended)
}

func TestMalformedPayloadKeepsProse(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Almost there!\n```json\n{broken\n```", nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "ok")
	assert.Equal(t, "Almost there!", turn.Text)
	assert.Empty(t, turn.Recommendations)
	assert.False(t, s.Recommended, "malformed payload must not flip the session state")
}

func TestMalformedPayloadWithoutProseFallsBack(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "```json\n{broken\n```", nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "ok")
	assert.Equal(t, fallbackReply, turn.Text)
	assert.False(t, s.Recommended)
}

func TestCollaboratorFailureFallsBack(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "", errors.New("upstream unavailable")
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "hello")
	assert.Equal(t, fallbackReply, turn.Text)
	assert.False(t, s.Recommended)
	require.Len(t, s.Turns, 2, "both turns still land in the history")
}

func TestUnencodablePayloadFallsBack(t *testing.T) {
	// Parses fine but misses the Barking Level trait of the fitted space.
	payload := "```json\n" +
		`{"Energy Level": 5, "Coat Length": "Short", "Coat Type": "Smooth"}` +
		"\n```"
	collab := &fakeCollab{reply: func(string) (string, error) {
		return payload, nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "done")
	assert.Equal(t, fallbackReply, turn.Text)
	assert.False(t, s.Recommended, "failed pipeline must leave the session surveying")
}

func TestPanicInTurnIsRecovered(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		panic("collaborator exploded")
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "hello")
	assert.Equal(t, fallbackReply, turn.Text)
	assert.False(t, s.Recommended)
	require.Len(t, s.Turns, 2)
	assert.Equal(t, fallbackReply, s.Turns[1].Text)
}

func recommendedSession(t *testing.T, e *Engine, collab *fakeCollab) *Session {
	t.Helper()
	s := NewSession()
	prev := collab.reply
	collab.reply = func(string) (string, error) { return goodPayload, nil }
	e.HandleTurn(context.Background(), s, "survey done")
	collab.reply = prev
	require.True(t, s.Recommended)
	return s
}

func TestPostRequestAfterRecommendation(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Sniffing out adventures, one paw at a time!", nil
	}}
	e := newTestEngine(t, collab)
	s := recommendedSession(t, e, collab)

	turn := e.HandleTurn(context.Background(), s, "write an instagram post about Beagles")

	assert.True(t, strings.HasPrefix(turn.Text, "**PAWS (Social Media Post):**\n\n"))
	assert.Contains(t, turn.Text, "Sniffing out adventures")
	require.Len(t, turn.Recommendations, 1)
	assert.Equal(t, "Beagles", turn.Recommendations[0].Breed)
	assert.Equal(t, []byte("beagle jpeg"), turn.Recommendations[0].Image)

	// The caption prompt names the breed and carries the user's theme.
	last := collab.prompts[len(collab.prompts)-1]
	assert.Contains(t, last, "Beagles")
	assert.Contains(t, last, "instagram post")
}

func TestVideoRequestAfterRecommendation(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Zoomies incoming!", nil
	}}
	e := newTestEngine(t, collab)
	s := recommendedSession(t, e, collab)

	turn := e.HandleTurn(context.Background(), s, "make a video of Beagles playing")

	assert.True(t, strings.HasPrefix(turn.Text, "**PAWS (Video Caption):**\n\n"))
	require.NotNil(t, turn.Clip)
	assert.Equal(t, "Beagles", turn.Clip.Breed)
	assert.Len(t, turn.Clip.Frames, 3)
}

func TestVideoRequestWithoutAssetDegrades(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Elegant and speedy!", nil
	}}
	e := newTestEngine(t, collab)
	s := recommendedSession(t, e, collab)

	// Greyhounds are mapped but have no frames in the fake source.
	turn := e.HandleTurn(context.Background(), s, "a video of Greyhounds")

	assert.True(t, strings.HasPrefix(turn.Text, "**PAWS (Video Caption):**\n\n"))
	assert.Nil(t, turn.Clip, "missing frames degrade to a caption-only turn")
}

func TestIntentWithoutBreedPassesThrough(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Which breed should the post feature?", nil
	}}
	e := newTestEngine(t, collab)
	s := recommendedSession(t, e, collab)

	turn := e.HandleTurn(context.Background(), s, "make me a post")

	assert.Equal(t, "Which breed should the post feature?", turn.Text)
	// The raw utterance goes straight to the collaborator, untemplated.
	assert.Equal(t, "make me a post", collab.prompts[len(collab.prompts)-1])
}

func TestIntentBeforeRecommendationIsSurveyed(t *testing.T) {
	collab := &fakeCollab{reply: func(string) (string, error) {
		return "Let's find your match first! How active are you?", nil
	}}
	e := newTestEngine(t, collab)
	s := NewSession()

	turn := e.HandleTurn(context.Background(), s, "make a video of Beagles")

	// Before the first recommendation the content branches are unreachable.
	assert.Nil(t, turn.Clip)
	assert.Equal(t, "make a video of Beagles", collab.prompts[0])
	assert.Equal(t, "Let's find your match first! How active are you?", turn.Text)
}

func TestRepeatSurveyReRanks(t *testing.T) {
	poodlePayload := "```json\n" +
		`{"Energy Level": 3, "Barking Level": 3, "Coat Length": "Long", "Coat Type": "Curly"}` +
		"\n```"
	collab := &fakeCollab{reply: func(string) (string, error) {
		return poodlePayload, nil
	}}
	e := newTestEngine(t, collab)
	s := recommendedSession(t, e, collab)

	turn := e.HandleTurn(context.Background(), s, "actually I want a calmer dog")

	require.Len(t, turn.Recommendations, 3)
	assert.Equal(t, "Poodles", turn.Recommendations[0].Breed)
	assert.True(t, s.Recommended, "re-ranking keeps the recommended state")
}
