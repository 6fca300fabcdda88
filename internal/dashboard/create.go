package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// DefaultDoctor is the attending doctor used when the form leaves the
// field at its default.
const DefaultDoctor = "Dr. Warsame"

// FormDraft mirrors the add-patient form. Age stays raw text so the
// lenient parse policy (non-numeric input becomes zero) is applied at
// submit time rather than rejected at the surface.
type FormDraft struct {
	Name      string
	Age       string
	Gender    string
	Diagnosis string
	Doctor    string
	Status    apiclient.Status
	Room      string
}

// DefaultDraft returns the form defaults.
func DefaultDraft() FormDraft {
	return FormDraft{
		Gender: "Male",
		Doctor: DefaultDoctor,
		Status: apiclient.StatusStable,
	}
}

func (d FormDraft) toWire() apiclient.Draft {
	age, err := strconv.Atoi(d.Age)
	if err != nil || age < 0 {
		age = 0
	}
	return apiclient.Draft{
		Name:      d.Name,
		Age:       age,
		Gender:    d.Gender,
		Diagnosis: d.Diagnosis,
		Doctor:    d.Doctor,
		Status:    d.Status,
		Room:      d.Room,
	}
}

// CreateFlow collects a draft, submits it, and reconciles via a full
// directory refresh rather than splicing the draft in optimistically.
//
// Policy carried over from the original UI: the form closes and resets to
// defaults after every submit, whether or not the backend accepted it. A
// failed create is logged, never surfaced.
type CreateFlow struct {
	backend Backend
	store   *DirectoryStore
	log     zerolog.Logger

	mu    sync.Mutex
	draft FormDraft
	open  bool
}

func NewCreateFlow(backend Backend, store *DirectoryStore, log zerolog.Logger) *CreateFlow {
	return &CreateFlow{
		backend: backend,
		store:   store,
		log:     log,
		draft:   DefaultDraft(),
	}
}

// Open shows the input surface with a fresh default draft.
func (f *CreateFlow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.draft = DefaultDraft()
}

// Close hides the input surface without submitting.
func (f *CreateFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.draft = DefaultDraft()
}

func (f *CreateFlow) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *CreateFlow) Draft() FormDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *CreateFlow) SetDraft(d FormDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Submit sends the current draft to the backend. The surface is closed
// and reset regardless of outcome. On success the directory is refreshed
// so the new record appears with its backend-assigned identifier; the
// refresh is issued only after the create itself has settled.
func (f *CreateFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	payload := f.draft.toWire()
	f.mu.Unlock()

	err := f.backend.AddPatient(ctx, payload)

	f.mu.Lock()
	f.draft = DefaultDraft()
	f.open = false
	f.mu.Unlock()

	if err != nil {
		f.log.Error().Err(err).Str("name", payload.Name).Msg("add patient failed")
		return fmt.Errorf("add patient: %w", err)
	}

	f.store.Refresh(ctx)
	return nil
}
