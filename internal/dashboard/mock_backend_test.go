package dashboard

import (
	"context"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// mockBackend implements Backend for tests.
type mockBackend struct {
	loginFunc func(ctx context.Context, username, password string) error
	listFunc  func(ctx context.Context) ([]apiclient.Patient, error)
	addFunc   func(ctx context.Context, d apiclient.Draft) error
	statsFunc func(ctx context.Context) (*apiclient.Stats, error)
}

func (m *mockBackend) Login(ctx context.Context, username, password string) error {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil
}

func (m *mockBackend) ListPatients(ctx context.Context) ([]apiclient.Patient, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockBackend) AddPatient(ctx context.Context, d apiclient.Draft) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, d)
	}
	return nil
}

func (m *mockBackend) Stats(ctx context.Context) (*apiclient.Stats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &apiclient.Stats{}, nil
}
