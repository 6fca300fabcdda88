package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/repository"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/service"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAuthRoutes wires the login endpoint. Audit logging is
// best-effort; a failed audit write never fails the request.
func RegisterAuthRoutes(r gin.IRouter, authSvc service.AuthService, audit repository.AuditRepo) {
	r.POST("/api/login", func(c *gin.Context) {
		var req loginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "username and password are required", "status": "error"})
			return
		}

		err := authSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			if audit != nil {
				_ = audit.LogEvent(c.Request.Context(), "login", req.Username, map[string]any{"outcome": "success"})
			}
			c.JSON(http.StatusOK, gin.H{"msg": "Success", "status": "ok"})
		case errors.Is(err, service.ErrInvalidCreds):
			if audit != nil {
				_ = audit.LogEvent(c.Request.Context(), "login", req.Username, map[string]any{"outcome": "rejected"})
			}
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid Credentials", "status": "error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error", "status": "error"})
		}
	})
}
