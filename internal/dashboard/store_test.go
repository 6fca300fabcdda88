package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

func roster(ids ...string) []apiclient.Patient {
	out := make([]apiclient.Patient, 0, len(ids))
	for _, id := range ids {
		out = append(out, apiclient.Patient{ID: id, Name: "Patient " + id, Status: apiclient.StatusStable})
	}
	return out
}

func TestRefresh_ReplacesCollection(t *testing.T) {
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			return roster("P-1", "P-2"), nil
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())

	got := store.Refresh(context.Background())
	assert.Len(t, got, 2)
	assert.Equal(t, 2, store.Len())

	// a later fetch that drops a record drops it locally too
	mock.listFunc = func(_ context.Context) ([]apiclient.Patient, error) {
		return roster("P-2"), nil
	}
	got = store.Refresh(context.Background())
	if assert.Len(t, got, 1) {
		assert.Equal(t, "P-2", got[0].ID)
	}
}

func TestRefresh_FailureRetainsStaleRoster(t *testing.T) {
	calls := 0
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			calls++
			if calls == 1 {
				return roster("P-1", "P-2", "P-3"), nil
			}
			return nil, errors.New("boom")
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())

	store.Refresh(context.Background())
	got := store.Refresh(context.Background()) // fails, must not panic or clear
	assert.Len(t, got, 3)
	assert.Equal(t, 3, store.Len())
}

func TestRefresh_FailureOnEmptyStoreStaysEmpty(t *testing.T) {
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			return nil, errors.New("boom")
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())
	assert.Empty(t, store.Refresh(context.Background()))
}

func TestFilter_MatchesNameOrID(t *testing.T) {
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			return []apiclient.Patient{
				{ID: "P-1001", Name: "Amina Farah"},
				{ID: "P-1002", Name: "Mohamed Ali"},
				{ID: "P-1003", Name: "Khadija Omar"},
			}, nil
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())
	store.Refresh(context.Background())

	// case-folded name substring
	got := store.Filter("farah")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "P-1001", got[0].ID)
	}

	// identifier substring matches every P-100x record
	assert.Len(t, store.Filter("p-100"), 3)

	// no match
	assert.Empty(t, store.Filter("zzz"))
}

func TestFilter_EmptyTermReturnsAllInOrder(t *testing.T) {
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			return roster("P-3", "P-1", "P-2"), nil
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())
	store.Refresh(context.Background())

	got := store.Filter("")
	if assert.Len(t, got, 3) {
		assert.Equal(t, "P-3", got[0].ID)
		assert.Equal(t, "P-1", got[1].ID)
		assert.Equal(t, "P-2", got[2].ID)
	}
}

func TestFilter_PreservesOrderAndDoesNotMutate(t *testing.T) {
	mock := &mockBackend{
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			return []apiclient.Patient{
				{ID: "P-9", Name: "Warsame"},
				{ID: "P-5", Name: "Farah"},
				{ID: "P-7", Name: "Warsame Junior"},
			}, nil
		},
	}
	store := NewDirectoryStore(mock, zerolog.Nop())
	store.Refresh(context.Background())

	got := store.Filter("warsame")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "P-9", got[0].ID)
		assert.Equal(t, "P-7", got[1].ID)
	}

	// repeated filtering never shrinks the stored collection
	assert.Equal(t, 3, store.Len())
	assert.Len(t, store.Filter(""), 3)
}
