package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/repository"
)

// PatientRepoMinimal is the subset of repository.PatientRepo used here.
type PatientRepoMinimal interface {
	List(ctx context.Context) ([]*repository.Patient, error)
	Create(ctx context.Context, p *repository.Patient) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	AdmissionsSince(ctx context.Context, since time.Time) (map[string]int, error)
}

// AddPatientInput mirrors the add-patient request body. Identifier and
// admission date are assigned here, not by the caller.
type AddPatientInput struct {
	Name      string
	Age       int
	Gender    string
	Diagnosis string
	Doctor    string
	Status    string
	Room      string
}

// DayCount is one bar of the overview admissions chart.
type DayCount struct {
	Day   string
	Count int
}

// DashboardStats carries the overview tab numbers.
type DashboardStats struct {
	TotalPatients int
	Stable        int
	Critical      int
	Recovering    int
	Discharged    int
	Admissions    []DayCount
}

// PatientService defines high-level behavior used by HTTP handlers.
type PatientService interface {
	List(ctx context.Context) ([]*repository.Patient, error)
	// Add persists a new patient; admission date is set to today.
	Add(ctx context.Context, in AddPatientInput) (*repository.Patient, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}

// patientServiceImpl implements PatientService
type patientServiceImpl struct {
	repo PatientRepoMinimal
	now  func() time.Time
}

func NewPatientService(repo PatientRepoMinimal) PatientService {
	return &patientServiceImpl{repo: repo, now: time.Now}
}

func (s *patientServiceImpl) List(ctx context.Context) ([]*repository.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}
	return patients, nil
}

func (s *patientServiceImpl) Add(ctx context.Context, in AddPatientInput) (*repository.Patient, error) {
	p := &repository.Patient{
		Name:          in.Name,
		Age:           in.Age,
		Gender:        in.Gender,
		AdmissionDate: s.now().Truncate(24 * time.Hour),
		Diagnosis:     in.Diagnosis,
		Doctor:        in.Doctor,
		Status:        in.Status,
		Room:          in.Room,
	}
	if _, err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("repo create: %w", err)
	}
	return p, nil
}

// Stats assembles the overview numbers: totals per status plus admission
// counts for the last seven days, oldest first.
func (s *patientServiceImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo count by status: %w", err)
	}

	out := &DashboardStats{}
	for status, count := range byStatus {
		out.TotalPatients += count
		switch {
		case strings.EqualFold(status, "Stable"):
			out.Stable += count
		case strings.EqualFold(status, "Critical"):
			out.Critical += count
		case strings.EqualFold(status, "Recovering"):
			out.Recovering += count
		case strings.EqualFold(status, "Discharged"):
			out.Discharged += count
		}
	}

	today := s.now().Truncate(24 * time.Hour)
	weekAgo := today.AddDate(0, 0, -6)
	byDay, err := s.repo.AdmissionsSince(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("repo admissions: %w", err)
	}
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		out.Admissions = append(out.Admissions, DayCount{
			Day:   day.Format("Mon"),
			Count: byDay[day.Format("2006-01-02")],
		})
	}
	return out, nil
}
