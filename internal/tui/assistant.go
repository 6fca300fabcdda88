package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const assistantGreeting = "Hello Dr. Warsame. How can I assist with the patient diagnosis today?"

var assistantPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1).
	Width(60)

// assistantPanel is the Horseed Assistant chat widget. The responses are
// canned; there is no model behind it yet.
type assistantPanel struct {
	input      textinput.Model
	transcript []string
	open       bool
}

func newAssistantPanel() *assistantPanel {
	input := textinput.New()
	input.Placeholder = "Type query..."
	input.CharLimit = 200
	input.Width = 50

	return &assistantPanel{
		input:      input,
		transcript: []string{"Assistant: " + assistantGreeting},
	}
}

func (a *assistantPanel) Toggle() tea.Cmd {
	a.open = !a.open
	if a.open {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

// assistantReply picks a canned answer for the query.
func assistantReply(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "status") || strings.Contains(q, "patient"):
		return "Patient statuses are listed in the directory tab; press 2 to open it."
	case strings.Contains(q, "add") || strings.Contains(q, "admit"):
		return "Press a to open the admission form. The record appears in the directory once saved."
	case strings.Contains(q, "hello") || strings.Contains(q, "hi"):
		return assistantGreeting
	default:
		return "I'm having trouble connecting to the Horseed Intelligence Network. Please try again later."
	}
}

func (a *assistantPanel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.open = false
			a.input.Blur()
			return nil
		case "enter":
			query := strings.TrimSpace(a.input.Value())
			if query == "" {
				return nil
			}
			a.transcript = append(a.transcript,
				"You: "+query,
				"Assistant: "+assistantReply(query),
			)
			a.input.SetValue("")
			return nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *assistantPanel) View() string {
	// Keep the last few exchanges visible.
	lines := a.transcript
	if len(lines) > 8 {
		lines = lines[len(lines)-8:]
	}

	return assistantPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Horseed Assistant"),
		strings.Join(lines, "\n"),
		"",
		a.input.View(),
		hintStyle.Render("Enter: Ask | Esc: Close"),
	))
}
