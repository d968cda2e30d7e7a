package chat

import "fmt"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting PAWS..."
	}

	header := m.styles.header.Render("🐾 PAWS — dog breed matcher")

	input := m.styles.input.Width(m.width - 2).Render(m.textarea.View())

	footer := m.styles.muted.Render("enter to send · esc to quit")
	if m.waiting {
		footer = m.spinner.View() + m.styles.muted.Render(" thinking...")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		header,
		m.viewport.View(),
		input,
		footer,
	)
}
