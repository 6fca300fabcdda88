package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// loginScreen renders the credentials form. A huh form completes exactly
// once, so the screen is rebuilt for every attempt; the previous failure
// message is shown above the fresh form.
type loginScreen struct {
	form      *huh.Form
	username  string
	password  string
	message   string
	done      bool
	cancelled bool
	waiting   bool
}

func newLoginScreen(message string) *loginScreen {
	s := &loginScreen{message: message}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&s.username).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&s.password).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func (s *loginScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *loginScreen) Update(msg tea.Msg) (*loginScreen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		s.cancelled = true
		return s, tea.Quit
	}

	// Ignore input while an attempt is in flight.
	if s.waiting {
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

func (s *loginScreen) View() string {
	title := titleStyle.Render("HORSEED HOSPITAL")
	subtitle := subtitleStyle.Render("Management dashboard — sign in")

	parts := []string{title, subtitle}
	if s.message != "" {
		parts = append(parts, errorStyle.Render(s.message), "")
	}
	if s.waiting {
		parts = append(parts, "Signing in...")
	} else {
		parts = append(parts, s.form.View())
	}
	parts = append(parts, "", hintStyle.Render("Enter: Submit | Ctrl+C: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *loginScreen) Done() bool      { return s.done }
func (s *loginScreen) Cancelled() bool { return s.cancelled }

// Credentials returns what the user typed.
func (s *loginScreen) Credentials() (string, string) {
	return s.username, s.password
}
