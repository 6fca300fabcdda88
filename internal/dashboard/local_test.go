package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

func TestLocal_Login(t *testing.T) {
	l := NewLocal()
	assert.NoError(t, l.Login(context.Background(), "admin", "123"))
	assert.ErrorIs(t, l.Login(context.Background(), "admin", "wrong"), apiclient.ErrCredentialsRejected)
	assert.ErrorIs(t, l.Login(context.Background(), "", ""), apiclient.ErrCredentialsRejected)
}

func TestLocal_SeedsDemoRoster(t *testing.T) {
	l := NewLocal()
	patients, err := l.ListPatients(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, patients, 5) {
		assert.Equal(t, "P-1001", patients[0].ID)
		assert.Equal(t, "Amina Farah", patients[0].Name)
		assert.Equal(t, "-", patients[4].RoomNumber) // discharged sentinel
	}
}

func TestLocal_AddPatientVisibleImmediately(t *testing.T) {
	l := NewLocal()
	l.now = func() time.Time { return time.Date(2024, 10, 27, 12, 0, 0, 0, time.UTC) }

	err := l.AddPatient(context.Background(), apiclient.Draft{
		Name: "New Patient", Age: 30, Gender: "Female",
		Diagnosis: "Observation", Doctor: DefaultDoctor, Status: apiclient.StatusStable,
	})
	assert.NoError(t, err)

	patients, err := l.ListPatients(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, patients, 6) {
		added := patients[5]
		assert.True(t, strings.HasPrefix(added.ID, "P-"))
		assert.Greater(t, len(added.ID), len("P-9999")) // not a 4-digit id
		assert.Equal(t, "2024-10-27", added.AdmissionDate)
	}
}

func TestLocal_PlaceholderIDsDoNotCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := PlaceholderID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestLocal_Stats(t *testing.T) {
	l := NewLocal()
	l.now = func() time.Time { return time.Date(2024, 10, 27, 12, 0, 0, 0, time.UTC) }

	s, err := l.Stats(context.Background())
	assert.NoError(t, err)
	if assert.NotNil(t, s) {
		assert.Equal(t, 5, s.TotalPatients)
		assert.Equal(t, 2, s.Stable)
		assert.Equal(t, 1, s.Critical)
		assert.Equal(t, 1, s.Recovering)
		assert.Equal(t, 1, s.Discharged)
		if assert.Len(t, s.Admissions, 7) {
			// demo roster has one admission on Oct 23, within the window
			assert.Equal(t, time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC).Format("Mon"), s.Admissions[0].Day)
			total := 0
			for _, a := range s.Admissions {
				total += a.Count
			}
			assert.Equal(t, 5, total) // all demo admissions fall in the last week
		}
	}
}
