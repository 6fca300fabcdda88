package dashboard

import (
	"context"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// Backend is the remote source of truth the dashboard talks to. It is
// satisfied by *apiclient.Client and by the in-process Local backend.
type Backend interface {
	Login(ctx context.Context, username, password string) error
	ListPatients(ctx context.Context) ([]apiclient.Patient, error)
	AddPatient(ctx context.Context, d apiclient.Draft) error
	Stats(ctx context.Context) (*apiclient.Stats, error)
}
