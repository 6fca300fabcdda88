package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// DirectoryStore caches the roster as of the last successful fetch. The
// collection is replaced wholesale by Refresh; records are never edited
// or deleted locally, the backend is the sole source of deletion truth.
type DirectoryStore struct {
	backend Backend
	log     zerolog.Logger

	mu       sync.RWMutex
	patients []apiclient.Patient
}

func NewDirectoryStore(backend Backend, log zerolog.Logger) *DirectoryStore {
	return &DirectoryStore{backend: backend, log: log}
}

// Refresh fetches the full roster and replaces the cached collection.
// On any failure the prior collection is retained and the error is only
// logged; the view keeps rendering whatever it had. The returned slice is
// the post-refresh snapshot either way.
func (s *DirectoryStore) Refresh(ctx context.Context) []apiclient.Patient {
	fetched, err := s.backend.ListPatients(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("directory refresh failed, keeping stale roster")
		return s.Patients()
	}

	s.mu.Lock()
	s.patients = fetched
	s.mu.Unlock()

	s.log.Debug().Int("count", len(fetched)).Msg("directory refreshed")
	return s.Patients()
}

// Patients returns a copy of the current snapshot in fetch order.
func (s *DirectoryStore) Patients() []apiclient.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]apiclient.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// Filter returns the records whose name or identifier contains term,
// case-insensitively, preserving fetch order. An empty term matches
// everything. The stored collection is never mutated.
func (s *DirectoryStore) Filter(term string) []apiclient.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folded := strings.ToLower(term)
	out := make([]apiclient.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		if folded == "" ||
			strings.Contains(strings.ToLower(p.Name), folded) ||
			strings.Contains(strings.ToLower(p.ID), folded) {
			out = append(out, p)
		}
	}
	return out
}

// Len reports the size of the cached roster.
func (s *DirectoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}
