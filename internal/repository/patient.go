package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Patient is a row in the patients table. The serial id is exposed on
// the wire as "P-<id>".
type Patient struct {
	ID            int64
	Name          string
	Age           int
	Gender        string
	AdmissionDate time.Time
	Diagnosis     string
	Doctor        string
	Status        string
	Room          string
}

// PublicID renders the wire-facing identifier.
func (p *Patient) PublicID() string {
	return fmt.Sprintf("P-%d", p.ID)
}

// DBPool is a minimal subset of pgxpool.Pool used by the repos.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PatientRepo handles patient persistence
type PatientRepo struct {
	pool DBPool
}

func NewPatientRepo(pool DBPool) *PatientRepo {
	return &PatientRepo{pool: pool}
}

// List returns every patient in insertion order.
func (r *PatientRepo) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `
    SELECT id, name, age, gender, admission_date, diagnosis, doctor, status, room
    FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Age,
			&p.Gender,
			&p.AdmissionDate,
			&p.Diagnosis,
			&p.Doctor,
			&p.Status,
			&p.Room,
		); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Create inserts a new patient and returns the assigned id.
func (r *PatientRepo) Create(ctx context.Context, p *Patient) (int64, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO patients (name, age, gender, admission_date, diagnosis, doctor, status, room)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id`,
		p.Name, p.Age, p.Gender, p.AdmissionDate, p.Diagnosis, p.Doctor, p.Status, p.Room)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// CountByStatus returns patient counts keyed by raw status value.
func (r *PatientRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(1) FROM patients GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	return out, rows.Err()
}

// AdmissionsSince returns admission counts keyed by yyyy-mm-dd date for
// admissions on or after the given day.
func (r *PatientRepo) AdmissionsSince(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT admission_date, COUNT(1) FROM patients WHERE admission_date >= $1 GROUP BY admission_date`,
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		out[day.Format("2006-01-02")] = count
	}
	return out, rows.Err()
}
