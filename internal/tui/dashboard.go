package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/dashboard"
)

// dashboardScreen renders the three tabs plus the add-patient form.
type dashboardScreen struct {
	app *dashboard.App

	roster table.Model
	search textinput.Model

	// Add-patient form; non-nil while open.
	addForm  *huh.Form
	draft    dashboard.FormDraft
	ageInput string

	assistant *assistantPanel

	stats *apiclient.Stats
}

func newDashboardScreen(app *dashboard.App) *dashboardScreen {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 22},
		{Title: "Age", Width: 4},
		{Title: "Status", Width: 11},
		{Title: "Doctor", Width: 18},
		{Title: "Room", Width: 6},
	}

	roster := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("63"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	roster.SetStyles(styles)

	search := textinput.New()
	search.Placeholder = "search by name or ID"
	search.CharLimit = 64
	search.Width = 32

	s := &dashboardScreen{
		app:       app,
		roster:    roster,
		search:    search,
		assistant: newAssistantPanel(),
	}
	s.reloadRows()
	return s
}

// reloadRows rebuilds the table from the store through the current
// search term.
func (s *dashboardScreen) reloadRows() {
	filtered := s.app.Directory.Filter(s.search.Value())
	rows := make([]table.Row, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, table.Row{
			p.ID,
			p.Name,
			strconv.Itoa(p.Age),
			string(p.Status),
			p.Doctor,
			p.RoomNumber,
		})
	}
	s.roster.SetRows(rows)
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// openAddForm starts a fresh draft. Age is collected as free text; a
// non-numeric value is stored as zero at submit time rather than blocked
// here.
func (s *dashboardScreen) openAddForm() {
	s.app.Create.Open()
	s.draft = s.app.Create.Draft()
	s.ageInput = s.draft.Age

	s.addForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&s.draft.Name).
				Validate(required("name")),

			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&s.ageInput).
				Validate(required("age")),

			huh.NewSelect[string]().
				Key("gender").
				Title("Gender").
				Options(
					huh.NewOption("Male", "Male"),
					huh.NewOption("Female", "Female"),
				).
				Value(&s.draft.Gender),

			huh.NewInput().
				Key("diagnosis").
				Title("Diagnosis").
				Value(&s.draft.Diagnosis).
				Validate(required("diagnosis")),

			huh.NewInput().
				Key("doctor").
				Title("Attending Doctor").
				Value(&s.draft.Doctor).
				Validate(required("doctor")),

			huh.NewSelect[apiclient.Status]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Stable", apiclient.StatusStable),
					huh.NewOption("Critical", apiclient.StatusCritical),
					huh.NewOption("Recovering", apiclient.StatusRecovering),
					huh.NewOption("Discharged", apiclient.StatusDischarged),
				).
				Value(&s.draft.Status),

			huh.NewInput().
				Key("room").
				Title("Room").
				Value(&s.draft.Room),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

func (s *dashboardScreen) closeAddForm() {
	s.app.Create.Close()
	s.addForm = nil
}

// updateAddForm drives the open form. It returns a submit command once
// the form completes.
func (s *dashboardScreen) updateAddForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		s.closeAddForm()
		return nil
	}

	form, cmd := s.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.addForm = f
	}

	if s.addForm.State == huh.StateCompleted {
		s.draft.Age = s.ageInput
		s.app.Create.SetDraft(s.draft)
		s.addForm = nil
		return submitCmd(s.app)
	}

	return cmd
}

func (s *dashboardScreen) viewTabs() string {
	tabs := []dashboard.Tab{dashboard.TabOverview, dashboard.TabDirectory, dashboard.TabSchedule}
	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == s.app.Tab() {
			rendered = append(rendered, tabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func (s *dashboardScreen) viewOverview() string {
	if s.stats == nil {
		return emptyStyle.Render("Loading overview...")
	}

	card := func(label string, value int) string {
		return statCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			statValueStyle.Render(strconv.Itoa(value)),
			subtitleStyle.Render(label),
		))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", s.stats.TotalPatients),
		card("Stable", s.stats.Stable),
		card("Critical", s.stats.Critical),
		card("Recovering", s.stats.Recovering),
		card("Discharged", s.stats.Discharged),
	)

	var chart strings.Builder
	chart.WriteString(subtitleStyle.Render("Admissions, last 7 days"))
	chart.WriteString("\n")
	for _, a := range s.stats.Admissions {
		bar := barStyle.Render(strings.Repeat("█", a.Count*3))
		fmt.Fprintf(&chart, "%-4s %s %d\n", a.Day, bar, a.Count)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", chart.String())
}

func (s *dashboardScreen) viewDirectory() string {
	header := "Search: " + s.search.View()

	var body string
	if len(s.roster.Rows()) == 0 {
		body = emptyStyle.Render("No patients found.")
	} else {
		body = s.roster.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (s *dashboardScreen) viewSchedule() string {
	return emptyStyle.Render("Scheduling is not available yet.\nAdmissions appear in the directory as they are recorded.")
}

func (s *dashboardScreen) View() string {
	title := titleStyle.Render("HORSEED HOSPITAL")

	if s.addForm != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			subtitleStyle.Render("Add patient"),
			s.addForm.View(),
			"",
			hintStyle.Render("Enter: Submit | Esc: Cancel"),
		)
	}

	var body string
	switch s.app.Tab() {
	case dashboard.TabOverview:
		body = s.viewOverview()
	case dashboard.TabDirectory:
		body = s.viewDirectory()
	case dashboard.TabSchedule:
		body = s.viewSchedule()
	}

	if s.assistant.open {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", s.assistant.View())
	}

	hint := "1/2/3: Tabs | a: Add patient | r: Refresh | /: Search | c: Assistant | L: Logout | q: Quit"

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.viewTabs(),
		"",
		body,
		"",
		hintStyle.Render(hint),
	)
}
