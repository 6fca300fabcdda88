package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
)

// Local is an in-process Backend for running the dashboard without the
// HTTP API. It seeds the demo roster and accepts the same default
// credentials the server seeds (admin / 123).
type Local struct {
	username string
	password string

	mu       sync.Mutex
	patients []apiclient.Patient
	now      func() time.Time
}

func NewLocal() *Local {
	return &Local{
		username: "admin",
		password: "123",
		patients: demoRoster(),
		now:      time.Now,
	}
}

// PlaceholderID synthesizes a client-side patient identifier for records
// created without a backend. Collision-resistant by construction, unlike
// the 4-digit random ids the old UI minted.
func PlaceholderID() string {
	return "P-" + uuid.NewString()
}

func (l *Local) Login(_ context.Context, username, password string) error {
	if username != l.username || password != l.password {
		return apiclient.ErrCredentialsRejected
	}
	return nil
}

func (l *Local) ListPatients(_ context.Context) ([]apiclient.Patient, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]apiclient.Patient, len(l.patients))
	copy(out, l.patients)
	return out, nil
}

// AddPatient appends immediately: in local mode the record becomes
// visible on form submission with a synthesized identifier.
func (l *Local) AddPatient(_ context.Context, d apiclient.Draft) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.patients = append(l.patients, apiclient.Patient{
		ID:            PlaceholderID(),
		Name:          d.Name,
		Age:           d.Age,
		Gender:        d.Gender,
		AdmissionDate: l.now().Format("2006-01-02"),
		Diagnosis:     d.Diagnosis,
		Doctor:        d.Doctor,
		Status:        d.Status,
		RoomNumber:    d.Room,
	})
	return nil
}

func (l *Local) Stats(_ context.Context) (*apiclient.Stats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := &apiclient.Stats{TotalPatients: len(l.patients)}
	byDate := make(map[string]int)
	for _, p := range l.patients {
		switch p.Status {
		case apiclient.StatusStable:
			s.Stable++
		case apiclient.StatusCritical:
			s.Critical++
		case apiclient.StatusRecovering:
			s.Recovering++
		case apiclient.StatusDischarged:
			s.Discharged++
		}
		byDate[p.AdmissionDate]++
	}

	// last seven days, oldest first
	today := l.now()
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		s.Admissions = append(s.Admissions, apiclient.Admissions{
			Day:   day.Format("Mon"),
			Count: byDate[day.Format("2006-01-02")],
		})
	}
	return s, nil
}

// demoRoster is the sample directory the original dashboard shipped with.
func demoRoster() []apiclient.Patient {
	return []apiclient.Patient{
		{
			ID: "P-1001", Name: "Amina Farah", Age: 34, Gender: "Female",
			AdmissionDate: "2024-10-24", Diagnosis: "Acute Bronchitis",
			Doctor: "Dr. Abdi Hassan", Status: apiclient.StatusRecovering, RoomNumber: "302-A",
		},
		{
			ID: "P-1002", Name: "Mohamed Ali", Age: 58, Gender: "Male",
			AdmissionDate: "2024-10-25", Diagnosis: "Hypertension Crisis",
			Doctor: "Dr. Sarah Egal", Status: apiclient.StatusStable, RoomNumber: "205-B",
		},
		{
			ID: "P-1003", Name: "Khadija Omar", Age: 72, Gender: "Female",
			AdmissionDate: "2024-10-26", Diagnosis: "Post-Op Hip Replacement",
			Doctor: "Dr. James Smith", Status: apiclient.StatusCritical, RoomNumber: "ICU-04",
		},
		{
			ID: "P-1004", Name: "Yusuf Ibrahim", Age: 22, Gender: "Male",
			AdmissionDate: "2024-10-26", Diagnosis: "Fractured Tibia",
			Doctor: "Dr. Abdi Hassan", Status: apiclient.StatusStable, RoomNumber: "104-C",
		},
		{
			ID: "P-1005", Name: "Leyla Warsame", Age: 45, Gender: "Female",
			AdmissionDate: "2024-10-23", Diagnosis: "Migraine / Neurology",
			Doctor: "Dr. Sarah Egal", Status: apiclient.StatusDischarged, RoomNumber: "-",
		},
	}
}
