// Package dialogue wraps the external conversational model. The core never
// inspects the collaborator's internals — it sends prompt text into an
// ongoing session and gets reply text back, with structured payloads fished
// out of the reply separately (see payload.go).
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Collaborator is the external dialogue service as the core sees it: text
// in, text out, within an ongoing session context.
type Collaborator interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// GeminiConfig configures the Gemini-backed collaborator.
type GeminiConfig struct {
	APIKey       string
	Model        string
	SystemPrompt string
	Timeout      time.Duration
}

// DefaultGeminiConfig returns sensible defaults for the PAWS interviewer.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:       apiKey,
		Model:        "gemini-2.5-flash",
		SystemPrompt: SystemPrompt,
		Timeout:      2 * time.Minute,
	}
}

// GeminiCollaborator drives a multi-turn Gemini chat session. One instance
// belongs to one conversation session; turns are strictly sequential, so no
// locking is needed around the chat handle.
type GeminiCollaborator struct {
	chat  *genai.Chat
	model string
	log   *zap.Logger
}

// NewGemini creates a Gemini collaborator with an ongoing chat session
// seeded by the system prompt.
func NewGemini(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (*GeminiCollaborator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	var genCfg *genai.GenerateContentConfig
	if cfg.SystemPrompt != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(cfg.SystemPrompt, genai.RoleUser),
		}
	}

	chat, err := client.Chats.Create(ctx, cfg.Model, genCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start chat session: %w", err)
	}

	return &GeminiCollaborator{
		chat:  chat,
		model: cfg.Model,
		log:   log,
	}, nil
}

// Send forwards one prompt into the session and returns the reply text.
func (g *GeminiCollaborator) Send(ctx context.Context, prompt string) (string, error) {
	started := time.Now()
	resp, err := g.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		g.log.Warn("collaborator call failed",
			zap.String("model", g.model),
			zap.Error(err))
		return "", fmt.Errorf("collaborator call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	g.log.Debug("collaborator reply",
		zap.String("model", g.model),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(started)))
	if text == "" {
		return "", fmt.Errorf("collaborator returned empty reply")
	}
	return text, nil
}
