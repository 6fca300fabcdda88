package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

func newFlow(mock *mockBackend) (*CreateFlow, *DirectoryStore) {
	store := NewDirectoryStore(mock, zerolog.Nop())
	return NewCreateFlow(mock, store, zerolog.Nop()), store
}

func TestDefaultDraft(t *testing.T) {
	d := DefaultDraft()
	assert.Empty(t, d.Name)
	assert.Equal(t, "Male", d.Gender)
	assert.Equal(t, DefaultDoctor, d.Doctor)
	assert.Equal(t, apiclient.StatusStable, d.Status)
	assert.Empty(t, d.Room)
}

func TestSubmit_LenientAgeParse(t *testing.T) {
	var got apiclient.Draft
	mock := &mockBackend{
		addFunc: func(_ context.Context, d apiclient.Draft) error {
			got = d
			return nil
		},
	}
	flow, _ := newFlow(mock)

	flow.Open()
	flow.SetDraft(FormDraft{
		Name: "Test Patient", Age: "abc", Gender: "Male",
		Diagnosis: "Flu", Doctor: DefaultDoctor, Status: apiclient.StatusStable,
	})

	// "abc" is not rejected, it becomes age zero
	assert.NoError(t, flow.Submit(context.Background()))
	assert.Equal(t, 0, got.Age)
	assert.Equal(t, "Test Patient", got.Name)
}

func TestSubmit_NumericAge(t *testing.T) {
	var got apiclient.Draft
	mock := &mockBackend{
		addFunc: func(_ context.Context, d apiclient.Draft) error {
			got = d
			return nil
		},
	}
	flow, _ := newFlow(mock)
	flow.SetDraft(FormDraft{Name: "X", Age: "47", Diagnosis: "Y", Doctor: "Z"})
	assert.NoError(t, flow.Submit(context.Background()))
	assert.Equal(t, 47, got.Age)
}

func TestSubmit_AlwaysResetsAndCloses(t *testing.T) {
	mock := &mockBackend{
		addFunc: func(_ context.Context, _ apiclient.Draft) error {
			return errors.New("backend down")
		},
	}
	flow, _ := newFlow(mock)

	flow.Open()
	flow.SetDraft(FormDraft{Name: "Lost Draft", Age: "30", Diagnosis: "D", Doctor: "Dr. X"})

	err := flow.Submit(context.Background())
	assert.Error(t, err)

	// even on failure the surface closes and the draft resets
	assert.False(t, flow.IsOpen())
	assert.Equal(t, DefaultDraft(), flow.Draft())
}

func TestSubmit_SuccessTriggersRefreshAfterCreateSettles(t *testing.T) {
	var order []string
	mock := &mockBackend{
		addFunc: func(_ context.Context, _ apiclient.Draft) error {
			order = append(order, "add")
			return nil
		},
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			order = append(order, "list")
			return roster("P-1"), nil
		},
	}
	flow, store := newFlow(mock)

	flow.SetDraft(FormDraft{Name: "N", Age: "1", Diagnosis: "D", Doctor: "Dr"})
	assert.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, []string{"add", "list"}, order)
	assert.Equal(t, 1, store.Len())
}

func TestSubmit_FailureSkipsRefresh(t *testing.T) {
	listCalled := false
	mock := &mockBackend{
		addFunc: func(_ context.Context, _ apiclient.Draft) error {
			return errors.New("boom")
		},
		listFunc: func(_ context.Context) ([]apiclient.Patient, error) {
			listCalled = true
			return nil, nil
		},
	}
	flow, _ := newFlow(mock)
	flow.SetDraft(FormDraft{Name: "N", Age: "1"})
	assert.Error(t, flow.Submit(context.Background()))
	assert.False(t, listCalled)
}

func TestSubmit_RapidDoubleCreateBothGoThrough(t *testing.T) {
	// the create flow has no dedup guard: two identical drafts submitted
	// back to back both reach the backend
	var drafts []apiclient.Draft
	backing := roster()
	mock := &mockBackend{}
	mock.addFunc = func(_ context.Context, d apiclient.Draft) error {
		drafts = append(drafts, d)
		backing = append(backing, apiclient.Patient{ID: PlaceholderID(), Name: d.Name})
		return nil
	}
	mock.listFunc = func(_ context.Context) ([]apiclient.Patient, error) {
		out := make([]apiclient.Patient, len(backing))
		copy(out, backing)
		return out, nil
	}

	flow, store := newFlow(mock)
	draft := FormDraft{Name: "Twin", Age: "20", Diagnosis: "D", Doctor: "Dr"}

	flow.SetDraft(draft)
	assert.NoError(t, flow.Submit(context.Background()))
	flow.SetDraft(draft)
	assert.NoError(t, flow.Submit(context.Background()))

	assert.Len(t, drafts, 2)
	final := store.Patients()
	if assert.Len(t, final, 2) {
		// distinct records despite identical drafts
		assert.NotEqual(t, final[0].ID, final[1].ID)
	}
}
