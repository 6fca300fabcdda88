package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/repository"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/service"
)

// PatientService is the subset of service.PatientService used by the
// patient endpoints.
type PatientService interface {
	List(ctx context.Context) ([]*repository.Patient, error)
	Add(ctx context.Context, in service.AddPatientInput) (*repository.Patient, error)
	Stats(ctx context.Context) (*service.DashboardStats, error)
}

type addPatientReq struct {
	Name      string `json:"name" binding:"required"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
	Doctor    string `json:"doctor"`
	Status    string `json:"status"`
	Room      string `json:"room"`
}

func patientJSON(p *repository.Patient) gin.H {
	return gin.H{
		"id":            p.PublicID(),
		"name":          p.Name,
		"age":           p.Age,
		"gender":        p.Gender,
		"admissionDate": p.AdmissionDate.Format("2006-01-02"),
		"diagnosis":     p.Diagnosis,
		"doctor":        p.Doctor,
		"status":        p.Status,
		"roomNumber":    p.Room,
	}
}

// RegisterPatientRoutes wires the patient directory, creation, and
// overview-stats endpoints.
func RegisterPatientRoutes(r gin.IRouter, svc PatientService, audit repository.AuditRepo) {
	r.GET("/api/patients", func(c *gin.Context) {
		patients, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error", "status": "error"})
			return
		}
		out := make([]gin.H, 0, len(patients))
		for _, p := range patients {
			out = append(out, patientJSON(p))
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/api/add_patient", func(c *gin.Context) {
		var req addPatientReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "name is required", "status": "error"})
			return
		}

		p, err := svc.Add(c.Request.Context(), service.AddPatientInput{
			Name:      req.Name,
			Age:       req.Age,
			Gender:    req.Gender,
			Diagnosis: req.Diagnosis,
			Doctor:    req.Doctor,
			Status:    req.Status,
			Room:      req.Room,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error", "status": "error"})
			return
		}
		if audit != nil {
			_ = audit.LogEvent(c.Request.Context(), "patient_created", p.PublicID(), map[string]any{"name": p.Name})
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Patient Added", "status": "ok"})
	})

	r.GET("/api/stats", func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error", "status": "error"})
			return
		}
		admissions := make([]gin.H, 0, len(stats.Admissions))
		for _, d := range stats.Admissions {
			admissions = append(admissions, gin.H{"day": d.Day, "count": d.Count})
		}
		c.JSON(http.StatusOK, gin.H{
			"totalPatients": stats.TotalPatients,
			"stable":        stats.Stable,
			"critical":      stats.Critical,
			"recovering":    stats.Recovering,
			"discharged":    stats.Discharged,
			"admissions":    admissions,
		})
	})
}
