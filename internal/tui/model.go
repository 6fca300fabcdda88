package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/dashboard"
)

// phase is the current top-level surface.
type phase int

const (
	phaseLogin phase = iota
	phaseDashboard
)

const backendTimeout = 5 * time.Second

// Model is the root bubbletea model: a phase switch between the login
// surface and the dashboard. All domain state lives in dashboard.App;
// the model only translates key presses and messages into calls on it.
type Model struct {
	app *dashboard.App

	phase phase
	login *loginScreen
	dash  *dashboardScreen

	width  int
	height int
}

func NewModel(app *dashboard.App) *Model {
	return &Model{
		app:   app,
		phase: phaseLogin,
		login: newLoginScreen(""),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.login.Init()
}

func loginCmd(app *dashboard.App, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		err := app.Session.AttemptLogin(ctx, username, password)
		return loginResultMsg{err: err}
	}
}

func bootCmd(app *dashboard.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		app.OnAuthenticated(ctx)
		return rosterMsg{patients: app.Directory.Patients()}
	}
}

func refreshCmd(app *dashboard.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		return rosterMsg{patients: app.Directory.Refresh(ctx)}
	}
}

func statsCmd(app *dashboard.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		stats, err := app.Backend().Stats(ctx)
		if err != nil {
			return statsMsg{stats: nil}
		}
		return statsMsg{stats: stats}
	}
}

func submitCmd(app *dashboard.App) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		err := app.Create.Submit(ctx)
		return createResultMsg{err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.phase {
	case phaseLogin:
		return m.updateLogin(msg)
	case phaseDashboard:
		return m.updateDashboard(msg)
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		if result.err != nil {
			// Rebuild the form with the gate's user-facing message.
			m.login = newLoginScreen(m.app.Session.Message())
			return m, m.login.Init()
		}
		m.phase = phaseDashboard
		m.dash = newDashboardScreen(m.app)
		return m, tea.Batch(bootCmd(m.app), statsCmd(m.app))
	}

	login, cmd := m.login.Update(msg)
	m.login = login

	if m.login.Cancelled() {
		return m, tea.Quit
	}
	if m.login.Done() && !m.login.waiting {
		m.login.waiting = true
		username, password := m.login.Credentials()
		return m, tea.Batch(cmd, loginCmd(m.app, username, password))
	}
	return m, cmd
}

func (m *Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterMsg:
		m.dash.reloadRows()
		return m, nil

	case statsMsg:
		if msg.stats != nil {
			m.dash.stats = msg.stats
		}
		return m, nil

	case createResultMsg:
		// The form has already been reset; refresh of the roster (on
		// success) has already happened inside Submit. Stats may have
		// moved, so re-fetch them.
		m.dash.reloadRows()
		return m, statsCmd(m.app)
	}

	// The add form swallows all key input while open.
	if m.dash.addForm != nil {
		return m, m.dash.updateAddForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if m.dash.assistant.open {
			if key.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, m.dash.assistant.Update(msg)
		}
		if m.dash.search.Focused() {
			switch key.String() {
			case "esc", "enter":
				m.dash.search.Blur()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.dash.search, cmd = m.dash.search.Update(msg)
				m.dash.reloadRows()
				return m, cmd
			}
		}

		switch key.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.app.SetTab(dashboard.TabOverview)
			return m, statsCmd(m.app)
		case "2":
			m.app.SetTab(dashboard.TabDirectory)
			return m, nil
		case "3":
			m.app.SetTab(dashboard.TabSchedule)
			return m, nil
		case "a":
			m.dash.openAddForm()
			return m, m.dash.addForm.Init()
		case "r":
			return m, tea.Batch(refreshCmd(m.app), statsCmd(m.app))
		case "/":
			m.app.SetTab(dashboard.TabDirectory)
			return m, m.dash.search.Focus()
		case "c":
			return m, m.dash.assistant.Toggle()
		case "L":
			m.app.Logout()
			m.phase = phaseLogin
			m.login = newLoginScreen("")
			m.dash = nil
			return m, m.login.Init()
		}
	}

	if m.app.Tab() == dashboard.TabDirectory {
		var cmd tea.Cmd
		m.dash.roster, cmd = m.dash.roster.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.phase {
	case phaseLogin:
		return m.login.View()
	case phaseDashboard:
		return m.dash.View()
	}
	return ""
}
