package dialogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pawmatch/internal/breed"
	"pawmatch/internal/feature"
)

// ErrNoPayload reports a reply that carries no structured payload at all.
// This is the "absent" half of the extract/parse split: it is ordinary,
// not a failure — most survey turns have no payload yet.
var ErrNoPayload = errors.New("no structured payload in reply")

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// ExtractPayload looks for a fenced ```json block inside a reply. On
// success it returns the raw block contents and the surrounding prose with
// the block removed. A reply without a fence returns ErrNoPayload; a
// malformed block is left to ParseProfile to reject, so "not present" and
// "malformed" stay distinguishable.
func ExtractPayload(reply string) (payload, prose string, err error) {
	start := strings.Index(reply, fenceOpen)
	if start < 0 {
		return "", reply, ErrNoPayload
	}
	inner := start + len(fenceOpen)
	end := strings.Index(reply[inner:], fenceClose)
	if end < 0 {
		return "", reply, ErrNoPayload
	}

	payload = strings.TrimSpace(reply[inner : inner+end])
	prose = strings.TrimSpace(reply[:start] + reply[inner+end+len(fenceClose):])
	if payload == "" {
		return "", prose, ErrNoPayload
	}
	return payload, prose, nil
}

// ParseProfile decodes an extracted payload into a preference profile. The
// payload must be a single JSON object with a string value for each coat
// preference and a numeric value for every other key.
func ParseProfile(payload string) (feature.Profile, error) {
	decoder := json.NewDecoder(strings.NewReader(payload))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return feature.Profile{}, fmt.Errorf("malformed preference payload: %w", err)
	}

	p := feature.Profile{Traits: make(map[string]float64)}
	for key, value := range raw {
		switch key {
		case breed.ColumnCoatLength, breed.ColumnCoatType:
			s, ok := value.(string)
			if !ok {
				return feature.Profile{}, fmt.Errorf("preference %q must be a string", key)
			}
			if key == breed.ColumnCoatLength {
				p.CoatLength = s
			} else {
				p.CoatType = s
			}
		default:
			num, ok := value.(json.Number)
			if !ok {
				return feature.Profile{}, fmt.Errorf("trait %q must be numeric", key)
			}
			f, err := num.Float64()
			if err != nil {
				return feature.Profile{}, fmt.Errorf("trait %q is not a valid number: %w", key, err)
			}
			p.Traits[key] = f
		}
	}

	if p.CoatLength == "" || p.CoatType == "" {
		return feature.Profile{}, fmt.Errorf("preference payload missing %q or %q",
			breed.ColumnCoatLength, breed.ColumnCoatType)
	}
	return p, nil
}
