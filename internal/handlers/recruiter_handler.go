package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/models"
	"github.com/hirestream/hirestream/internal/services"
)

// RecruiterHandler serves job posting and application review for the
// /recruiter namespace.
type RecruiterHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewRecruiterHandler(jobs *services.JobService, applications *services.ApplicationService) *RecruiterHandler {
	return &RecruiterHandler{Jobs: jobs, Applications: applications}
}

func (h *RecruiterHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	if !req.HasAllFields() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all fields"})
		return
	}

	claims := auth.FromContext(c)
	job, err := h.Jobs.Create(&req, claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrBadDeadline) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": job})
}

func (h *RecruiterHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"message": "Jobs fetched successfully",
		"jobs":    jobs,
	})
}

func (h *RecruiterHandler) ActiveJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Active jobs fetched successfully",
		"activejobs": jobs,
	})
}

// AllApplications is GET /recruiter/applications: every application,
// flattened with job and student fields.
func (h *RecruiterHandler) AllApplications(c *gin.Context) {
	rows, err := h.Applications.ListAllDetailed(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching student applications", "error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": true, "message": "No applications found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "applications": rows})
}

func (h *RecruiterHandler) ApplicationsByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Status query parameter is required (e.g., ?status=shortlisted)",
		})
		return
	}
	rows, err := h.Applications.ListByStatus(status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status value. Allowed: " + strings.Join(models.ApplicationStatuses, ", "),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching applications by status", "error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No applications found with status: " + status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "applications": rows})
}

// Candidate is GET /recruiter/candidates/:id — the student plus their
// applications with populated jobs. A non-student id is a benign 200, the
// same way an unfiled application reads.
func (h *RecruiterHandler) Candidate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	student, applications, err := h.Applications.StudentWithApplications(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student not found or not a student account"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching candidate details and applications", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "candidate": student, "applications": applications})
}

// UpdateApplicationStatus is PUT /recruiter/applications/:applicationId/status.
func (h *RecruiterHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := paramID(c, "applicationId")
	if !ok {
		return
	}
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status field is required"})
		return
	}

	application, err := h.Applications.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status value. Allowed: " + strings.Join(models.ApplicationStatuses, ", "),
			})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while updating application status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application status updated successfully",
		"application": application,
	})
}
