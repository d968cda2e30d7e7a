package convo

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pawmatch/internal/assets"
	"pawmatch/internal/breed"
	"pawmatch/internal/dialogue"
	"pawmatch/internal/explain"
	"pawmatch/internal/feature"
	"pawmatch/internal/identity"
	"pawmatch/internal/intent"
	"pawmatch/internal/rank"
)

// fallbackReply is shown whenever a turn fails internally. A turn never
// surfaces a raw error and never returns empty text.
const fallbackReply = "I'm thinking..? 🐾"

// defaultRecommendationIntro opens the recommendation list when the
// collaborator's reply had no prose around the payload.
const defaultRecommendationIntro = "Great news! Here are our top 3 dog breed recommendations, handpicked just for you: 🐾"

// AssetSource is the slice of the photo repository the engine consumes.
type AssetSource interface {
	FetchImage(ctx context.Context, key string) ([]byte, error)
	FetchFrames(ctx context.Context, key string, max int) ([][]byte, error)
}

// Engine wires the recommendation pipeline behind the conversation state
// machine. All fields are read-only after construction; the only mutable
// state is the Session passed into HandleTurn.
type Engine struct {
	collab    dialogue.Collaborator
	space     *feature.Space
	table     *breed.Table
	names     []string    // canonical names, table order
	matrix    [][]float64 // encoded breed vectors, table order
	composer  *explain.Composer
	identity  identity.Map
	assets    AssetSource
	topN      int
	maxFrames int
	log       *zap.Logger
}

// EngineConfig bundles the immutable start-up artifacts an Engine runs on.
type EngineConfig struct {
	Collaborator dialogue.Collaborator
	Space        *feature.Space
	Table        *breed.Table
	Composer     *explain.Composer
	Identity     identity.Map
	Assets       AssetSource
	TopN         int
	MaxFrames    int
}

// NewEngine builds the per-process engine. The breed matrix is encoded once
// here and shared read-only across all sessions.
func NewEngine(cfg EngineConfig, log *zap.Logger) *Engine {
	if cfg.TopN <= 0 {
		cfg.TopN = rank.DefaultTopN
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		collab:    cfg.Collaborator,
		space:     cfg.Space,
		table:     cfg.Table,
		names:     cfg.Table.Names(),
		matrix:    cfg.Space.EncodeTable(cfg.Table),
		composer:  cfg.Composer,
		identity:  cfg.Identity,
		assets:    cfg.Assets,
		topN:      cfg.TopN,
		maxFrames: cfg.MaxFrames,
		log:       log,
	}
}

// HandleTurn processes one user utterance to completion and returns the
// assistant turn, which is also appended to the session history. It never
// returns an empty turn and never panics out: every internal failure is
// replaced by a fallback reply, leaving the session state unchanged so the
// user can retry.
func (e *Engine) HandleTurn(ctx context.Context, s *Session, text string) (turn Turn) {
	s.append(Turn{Role: RoleUser, Text: text})

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("turn dispatch panicked", zap.Any("panic", r))
			turn = s.append(Turn{Role: RoleAssistant, Text: fallbackReply})
		}
	}()

	contentIntent := intent.Classify(text)

	if s.Recommended && contentIntent != intent.None {
		breedName, found := intent.ExtractBreed(text, e.names)
		if !found {
			// Cannot act without knowing which breed; let the
			// collaborator answer open-endedly.
			return s.append(e.passthrough(ctx, text))
		}
		switch contentIntent {
		case intent.Post:
			return s.append(e.composePost(ctx, breedName, text))
		case intent.Video:
			return s.append(e.composeClip(ctx, breedName, text))
		}
	}

	return s.append(e.survey(ctx, s, text))
}

// passthrough forwards the utterance and returns the reply as-is.
func (e *Engine) passthrough(ctx context.Context, text string) Turn {
	reply, err := e.collab.Send(ctx, text)
	if err != nil {
		e.log.Warn("collaborator failure on passthrough", zap.Error(err))
		return Turn{Role: RoleAssistant, Text: fallbackReply}
	}
	return Turn{Role: RoleAssistant, Text: reply}
}

// composePost services a social-media caption request for a breed the user
// already saw recommended.
func (e *Engine) composePost(ctx context.Context, breedName, theme string) Turn {
	prompt := fmt.Sprintf(
		"Generate a short, playful social media caption for %s. Theme: %s. Max 2 sentences.",
		breedName, theme)
	caption, err := e.collab.Send(ctx, prompt)
	if err != nil {
		e.log.Warn("collaborator failure on post caption",
			zap.String("breed", breedName), zap.Error(err))
		return Turn{Role: RoleAssistant, Text: fallbackReply}
	}

	turn := Turn{
		Role: RoleAssistant,
		Text: "**PAWS (Social Media Post):**\n\n" + caption,
	}
	if img := e.fetchImage(ctx, breedName); img != nil {
		turn.Recommendations = []Recommendation{{Breed: breedName, Image: img}}
	}
	return turn
}

// composeClip services a looping-clip request: a themed caption plus an
// ordered frame sequence for the presentation layer to assemble.
func (e *Engine) composeClip(ctx context.Context, breedName, theme string) Turn {
	prompt := fmt.Sprintf("Caption for looping video of %s. Theme: %s.", breedName, theme)
	caption, err := e.collab.Send(ctx, prompt)
	if err != nil {
		e.log.Warn("collaborator failure on video caption",
			zap.String("breed", breedName), zap.Error(err))
		return Turn{Role: RoleAssistant, Text: fallbackReply}
	}

	turn := Turn{
		Role: RoleAssistant,
		Text: "**PAWS (Video Caption):**\n\n" + caption,
	}

	key, ok := e.identity[breedName]
	if !ok {
		e.log.Warn("no asset mapping for clip request", zap.String("breed", breedName))
		return turn
	}
	frames, err := e.assets.FetchFrames(ctx, key, e.maxFrames)
	if err != nil {
		e.log.Warn("frame fetch failed",
			zap.String("breed", breedName),
			zap.String("key", key),
			zap.Error(err))
		return turn
	}
	turn.Clip = &Clip{Breed: breedName, Frames: frames}
	return turn
}

// survey forwards the utterance to the collaborator and, when the reply
// embeds a preference payload, runs the full recommendation pipeline and
// flips the session into the recommended state.
func (e *Engine) survey(ctx context.Context, s *Session, text string) Turn {
	reply, err := e.collab.Send(ctx, text)
	if err != nil {
		e.log.Warn("collaborator failure on survey turn", zap.Error(err))
		return Turn{Role: RoleAssistant, Text: fallbackReply}
	}

	payload, prose, err := dialogue.ExtractPayload(reply)
	if errors.Is(err, dialogue.ErrNoPayload) {
		return Turn{Role: RoleAssistant, Text: reply}
	}

	profile, err := dialogue.ParseProfile(payload)
	if err != nil {
		// Malformed payload: recover locally, the turn is ordinary text.
		e.log.Warn("preference payload did not parse", zap.Error(err))
		if prose == "" {
			prose = fallbackReply
		}
		return Turn{Role: RoleAssistant, Text: prose}
	}

	recs, err := e.recommend(ctx, profile)
	if err != nil {
		e.log.Warn("recommendation pipeline failed", zap.Error(err))
		return Turn{Role: RoleAssistant, Text: fallbackReply}
	}

	if prose == "" {
		prose = defaultRecommendationIntro
	}
	s.Recommended = true
	return Turn{Role: RoleAssistant, Text: prose, Recommendations: recs}
}

// recommend runs encode -> rank -> explain -> resolve for one profile.
// Image fetches run concurrently; a breed without an asset still appears,
// with a nil image.
func (e *Engine) recommend(ctx context.Context, profile feature.Profile) ([]Recommendation, error) {
	userVec, err := e.space.EncodeProfile(profile)
	if err != nil {
		return nil, err
	}

	ranked := rank.Rank(userVec, e.names, e.matrix, e.topN)
	explained := e.composer.Explain(ranked)

	recs := make([]Recommendation, len(explained))
	g, gctx := errgroup.WithContext(ctx)
	for i, ex := range explained {
		recs[i] = Recommendation{Breed: ex.Breed, Explanation: ex.Text}
		g.Go(func() error {
			recs[i].Image = e.fetchImage(gctx, ex.Breed)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; images are best-effort

	return recs, nil
}

// fetchImage resolves a breed to its asset key and downloads the
// representative image. Any gap or failure yields nil — "no image".
func (e *Engine) fetchImage(ctx context.Context, breedName string) []byte {
	key, ok := e.identity[breedName]
	if !ok {
		e.log.Debug("breed not in identity map", zap.String("breed", breedName))
		return nil
	}
	img, err := e.assets.FetchImage(ctx, key)
	if err != nil {
		if !errors.Is(err, assets.ErrNotFound) {
			e.log.Warn("image fetch failed",
				zap.String("breed", breedName),
				zap.String("key", key),
				zap.Error(err))
		}
		return nil
	}
	return img
}
