package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"pawmatch/internal/convo"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 1
		inputHeight := 3
		vpHeight := m.height - headerHeight - inputHeight - 1
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(m.width-4),
			)
			if err == nil {
				m.renderer = renderer
			}
			m.appendAssistant(convo.Turn{Role: convo.RoleAssistant, Text: welcomeMessage})
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(m.width - 4)
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" || m.waiting {
				break
			}
			m.textarea.Reset()
			m.waiting = true
			m.transcript = append(m.transcript,
				m.styles.user.Render("You: ")+text)
			m.refreshViewport()
			// Swallow the keypress so it does not land in the textarea.
			return m, tea.Batch(m.sendTurn(text), m.spinner.Tick)
		}

	case turnMsg:
		m.waiting = false
		m.appendAssistant(msg.turn)
		m.refreshViewport()

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var taCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	cmds = append(cmds, taCmd)

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

// appendAssistant renders one assistant turn into the transcript:
// markdown text, then each recommendation with its asset availability,
// then a saved clip reference if the turn carries frames.
func (m *Model) appendAssistant(turn convo.Turn) {
	var b strings.Builder
	b.WriteString(m.styles.assistant.Render("PAWS:"))
	b.WriteString("\n")
	b.WriteString(m.renderMarkdown(turn.Text))

	for _, rec := range turn.Recommendations {
		b.WriteString(m.renderMarkdown(fmt.Sprintf("### 🐶 %s", rec.Breed)))
		if rec.Explanation != "" {
			b.WriteString(m.renderMarkdown(rec.Explanation))
		}
		if rec.Image != nil {
			b.WriteString(m.styles.muted.Render(
				fmt.Sprintf("  [photo: %d bytes]", len(rec.Image))))
		} else {
			b.WriteString(m.styles.muted.Render("  [no photo available]"))
		}
		b.WriteString("\n")
	}

	if turn.Clip != nil {
		if dir, err := m.saveClip(turn.Clip); err == nil {
			b.WriteString(m.styles.muted.Render(
				fmt.Sprintf("  [clip: %d frames saved to %s]", len(turn.Clip.Frames), dir)))
		} else {
			m.log.Warn("failed to save clip frames", zap.Error(err))
			b.WriteString(m.styles.muted.Render("  [clip unavailable]"))
		}
		b.WriteString("\n")
	}

	m.transcript = append(m.transcript, b.String())
}

// renderMarkdown renders with glamour, falling back to plain text if the
// renderer is unavailable or panics on odd input.
func (m Model) renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content + "\n"
		}
	}()
	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content + "\n"
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}
