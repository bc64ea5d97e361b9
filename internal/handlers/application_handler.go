package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/services"
)

// ApplicationHandler serves the student-side /applications namespace.
type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /applications/apply. One application per (student, job)
// pair; a duplicate is a 400, not a second row.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "jobId is required"})
		return
	}

	claims := auth.FromContext(c)
	application, err := h.Applications.Apply(claims.UserID, req.JobID, req.Resume)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Already applied for this job"})
		case errors.Is(err, services.ErrNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Job or account is not verified yet"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while applying for job", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// MyApplications is GET /applications/myapplication.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	claims := auth.FromContext(c)
	rows, err := h.Applications.ListForStudent(claims.UserID, queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching student applications", "error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No applications found for this student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "applications": rows})
}

// Status is GET /applications/:id where :id is a job id. "No application
// yet" is a normal state and answers 200, not 404.
func (h *ApplicationHandler) Status(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims := auth.FromContext(c)
	application, err := h.Applications.StatusForJob(claims.UserID, jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "not found or application not filled yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching student applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"status":       application.Status,
		"applications": application,
	})
}
