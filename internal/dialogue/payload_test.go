package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	reply := "Perfect, I have everything I need!\n\n```json\n{\"Energy Level\": 4}\n```\n\nOne moment... 🐾"

	payload, prose, err := ExtractPayload(reply)
	require.NoError(t, err)
	assert.Equal(t, `{"Energy Level": 4}`, payload)
	// The fence is cut out; the surrounding newlines stay.
	assert.Equal(t, "Perfect, I have everything I need!\n\n\n\nOne moment... 🐾", prose)
}

func TestExtractPayloadAbsent(t *testing.T) {
	reply := "Tell me, do you live in an apartment or a house with a yard?"

	payload, prose, err := ExtractPayload(reply)
	require.ErrorIs(t, err, ErrNoPayload)
	assert.Empty(t, payload)
	assert.Equal(t, reply, prose)
}

func TestExtractPayloadUnterminatedFence(t *testing.T) {
	_, prose, err := ExtractPayload("here it comes ```json {\"x\": 1")
	require.ErrorIs(t, err, ErrNoPayload)
	assert.NotEmpty(t, prose)
}

func TestExtractPayloadEmptyFence(t *testing.T) {
	_, _, err := ExtractPayload("```json\n\n```")
	require.ErrorIs(t, err, ErrNoPayload)
}

func TestExtractPayloadMalformedIsNotAbsent(t *testing.T) {
	// A fence holding garbage extracts fine; rejecting it is ParseProfile's
	// job. The two failure kinds must stay distinguishable.
	payload, _, err := ExtractPayload("```json\nnot json at all\n```")
	require.NoError(t, err)
	assert.Equal(t, "not json at all", payload)

	_, perr := ParseProfile(payload)
	require.Error(t, perr)
	assert.NotErrorIs(t, perr, ErrNoPayload)
}

func TestParseProfile(t *testing.T) {
	payload := `{
		"Affectionate With Family": 5,
		"Energy Level": 2.5,
		"Coat Length": "Short",
		"Coat Type": "Smooth"
	}`

	p, err := ParseProfile(payload)
	require.NoError(t, err)
	assert.Equal(t, "Short", p.CoatLength)
	assert.Equal(t, "Smooth", p.CoatType)
	assert.InDelta(t, 5, p.Traits["Affectionate With Family"], 1e-12)
	assert.InDelta(t, 2.5, p.Traits["Energy Level"], 1e-12)
	assert.Len(t, p.Traits, 2)
}

func TestParseProfileRejections(t *testing.T) {
	tests := map[string]string{
		"not json":             `certainly! here is the JSON you asked for`,
		"missing coat length":  `{"Energy Level": 3, "Coat Type": "Smooth"}`,
		"missing coat type":    `{"Energy Level": 3, "Coat Length": "Short"}`,
		"string trait value":   `{"Energy Level": "high", "Coat Length": "Short", "Coat Type": "Smooth"}`,
		"numeric coat value":   `{"Energy Level": 3, "Coat Length": 2, "Coat Type": "Smooth"}`,
		"array instead of obj": `[1, 2, 3]`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile(payload)
			assert.Error(t, err)
		})
	}
}
