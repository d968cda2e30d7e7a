// Package convo holds the per-conversation state and the turn dispatcher
// that decides, utterance by utterance, whether the system is still
// surveying the user, presenting ranked recommendations, or servicing a
// follow-up request about a specific breed.
package convo

import (
	"github.com/google/uuid"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Recommendation is one breed surfaced to the user: name, explanation text,
// and an optional representative image. A nil Image means no asset was
// available; the explanation still stands.
type Recommendation struct {
	Breed       string
	Explanation string
	Image       []byte
}

// Clip is an ordered frame sequence for a short looping video. Encoding the
// frames into a playable clip is the presentation layer's job.
type Clip struct {
	Breed  string
	Frames [][]byte
}

// Turn is one entry of the session history.
type Turn struct {
	Role            Role
	Text            string
	Recommendations []Recommendation
	Clip            *Clip
}

// Session is the mutable per-conversation state: the ordered turn history
// and whether the initial top-N recommendation set has been delivered.
// Turns are processed strictly one at a time, so Session needs no locking;
// distinct sessions are fully independent.
type Session struct {
	ID          string
	Turns       []Turn
	Recommended bool
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) append(t Turn) Turn {
	s.Turns = append(s.Turns, t)
	return t
}
