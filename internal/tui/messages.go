package tui

import (
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	err error
}

// rosterMsg carries a fresh directory snapshot after a refresh.
type rosterMsg struct {
	patients []apiclient.Patient
}

// statsMsg carries the overview numbers. A nil stats means the fetch
// failed and the view keeps whatever it had.
type statsMsg struct {
	stats *apiclient.Stats
}

// createResultMsg signals that a submit has settled. The form has already
// been reset either way; err is informational only.
type createResultMsg struct {
	err error
}
