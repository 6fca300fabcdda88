package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Tab identifies one of the three mutually exclusive dashboard views.
type Tab int

const (
	TabOverview Tab = iota
	TabDirectory
	TabSchedule
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabDirectory:
		return "Patients"
	case TabSchedule:
		return "Schedule"
	default:
		return "Unknown"
	}
}

// App bundles the dashboard state components. All mutable UI state hangs
// off this struct; there are no package-level globals.
type App struct {
	Session   *SessionGate
	Directory *DirectoryStore
	Create    *CreateFlow

	backend Backend

	mu        sync.Mutex
	tab       Tab
	refreshed bool
}

func NewApp(backend Backend, log zerolog.Logger) *App {
	store := NewDirectoryStore(backend, log)
	return &App{
		Session:   NewSessionGate(backend),
		Directory: store,
		Create:    NewCreateFlow(backend, store, log),
		backend:   backend,
	}
}

func (a *App) Backend() Backend { return a.backend }

func (a *App) Tab() Tab {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tab
}

func (a *App) SetTab(t Tab) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tab = t
}

// OnAuthenticated performs the initial directory fetch. It runs exactly
// once per LoggedOut -> LoggedIn transition; later calls are no-ops until
// Logout resets the gate.
func (a *App) OnAuthenticated(ctx context.Context) {
	a.mu.Lock()
	if a.refreshed {
		a.mu.Unlock()
		return
	}
	a.refreshed = true
	a.mu.Unlock()

	a.Directory.Refresh(ctx)
}

// Logout drops the session and rearms the initial fetch. The directory
// cache is kept; it is replaced on the next login's refresh.
func (a *App) Logout() {
	a.Session.Logout()
	a.mu.Lock()
	a.refreshed = false
	a.tab = TabOverview
	a.mu.Unlock()
}
