package apiclient

import (
	"encoding/json"
	"strings"
)

// Status is the closed set of patient conditions the dashboard understands.
// Values arriving over the wire outside this set are folded into
// StatusUnknown instead of being rejected.
type Status string

const (
	StatusStable     Status = "Stable"
	StatusCritical   Status = "Critical"
	StatusRecovering Status = "Recovering"
	StatusDischarged Status = "Discharged"
	StatusUnknown    Status = "Unknown"
)

// ParseStatus maps a raw wire value to a Status, case-insensitively.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "stable":
		return StatusStable
	case "critical":
		return StatusCritical
	case "recovering":
		return StatusRecovering
	case "discharged":
		return StatusDischarged
	default:
		return StatusUnknown
	}
}

// UnmarshalJSON normalizes on ingest so the rest of the app only ever
// sees enumerated values.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// Patient is the canonical record shape exchanged with the backend.
type Patient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	AdmissionDate string `json:"admissionDate"`
	Diagnosis     string `json:"diagnosis"`
	Doctor        string `json:"doctor"`
	Status        Status `json:"status"`
	RoomNumber    string `json:"roomNumber"` // "-" means not admitted / discharged
}

// Draft is a not-yet-persisted patient: everything except the identifier
// and admission date, which the backend assigns.
type Draft struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
	Doctor    string `json:"doctor"`
	Status    Status `json:"status"`
	Room      string `json:"room"`
}

// Admissions is one bar of the overview chart.
type Admissions struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Stats carries the overview tab numbers.
type Stats struct {
	TotalPatients int          `json:"totalPatients"`
	Stable        int          `json:"stable"`
	Critical      int          `json:"critical"`
	Recovering    int          `json:"recovering"`
	Discharged    int          `json:"discharged"`
	Admissions    []Admissions `json:"admissions"`
}
