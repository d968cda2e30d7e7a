// Package chat implements the interactive PAWS chat interface: a bubbletea
// program with a viewport transcript, a textarea input, and a spinner while
// a turn is in flight. Assistant markdown is rendered with glamour.
package chat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"pawmatch/internal/convo"
)

const welcomeMessage = `Hi! I'm **PAWS** 🐾 — tell me about your lifestyle and
I'll match you with your most compatible dog breeds. Say hello to begin!`

// turnMsg carries a completed assistant turn back into the update loop.
type turnMsg struct {
	turn convo.Turn
}

// Model is the bubbletea model for the chat interface.
type Model struct {
	engine  *convo.Engine
	session *convo.Session
	log     *zap.Logger

	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	transcript []string
	waiting    bool
	ready      bool
	width      int
	height     int

	styles styles
}

type styles struct {
	header    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	muted     lipgloss.Style
	input     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1),
	}
}

// New creates the chat model around a conversation engine.
func New(engine *convo.Engine, log *zap.Logger) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.Focus()
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		engine:     engine,
		session:    convo.NewSession(),
		log:        log,
		textarea:   ta,
		spinner:    sp,
		transcript: nil,
		styles:     defaultStyles(),
	}
}

// Run starts the chat program and blocks until the user quits.
func Run(engine *convo.Engine, log *zap.Logger) error {
	p := tea.NewProgram(New(engine, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// sendTurn dispatches one user utterance through the engine off the UI
// goroutine. The engine never returns an error; failures arrive as a
// fallback reply inside the turn.
func (m Model) sendTurn(text string) tea.Cmd {
	engine, session := m.engine, m.session
	return func() tea.Msg {
		return turnMsg{turn: engine.HandleTurn(context.Background(), session, text)}
	}
}

// saveClip writes a turn's frame sequence to a temp directory so the user
// has something to point a player or encoder at. Returns the directory.
func (m Model) saveClip(clip *convo.Clip) (string, error) {
	dir, err := os.MkdirTemp("", "paws-clip-*")
	if err != nil {
		return "", err
	}
	for i, frame := range clip.Frames {
		name := filepath.Join(dir, fmt.Sprintf("frame_%02d.jpg", i+1))
		if err := os.WriteFile(name, frame, 0o644); err != nil {
			return "", err
		}
	}
	return dir, nil
}
