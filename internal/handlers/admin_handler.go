package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/services"
)

// AdminHandler serves the /admin namespace: listings plus the verification
// toggles that gate what students can see and apply to.
type AdminHandler struct {
	Jobs         *services.JobService
	Users        *services.UserService
	Applications *services.ApplicationService
}

func NewAdminHandler(jobs *services.JobService, users *services.UserService, applications *services.ApplicationService) *AdminHandler {
	return &AdminHandler{Jobs: jobs, Users: users, Applications: applications}
}

func (h *AdminHandler) AllJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "all jobs",
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

// VerifyJob is PUT /admin/jobs/verify. isVerified tolerates "" as false.
func (h *AdminHandler) VerifyJob(c *gin.Context) {
	var req dtos.VerifyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "jobId is required"})
		return
	}
	job, err := h.Jobs.SetVerified(req.JobID, bool(req.IsVerified))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated successfully", "success": true, "jobs": job})
}

// VerifyStudent is PUT /admin/students/:id/verify.
func (h *AdminHandler) VerifyStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.VerifyStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "isVerified is required"})
		return
	}
	student, err := h.Users.SetVerified(id, bool(req.IsVerified))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated successfully", "success": true, "students": student})
}

func (h *AdminHandler) Students(c *gin.Context) {
	students, err := h.Users.ListStudents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching students", "error": err.Error()})
		return
	}
	if len(students) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": true, "message": "No students found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(students), "students": students})
}

func (h *AdminHandler) PendingVerifications(c *gin.Context) {
	students, err := h.Users.ListPendingVerifications(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching pending verifications", "error": err.Error()})
		return
	}
	if len(students) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No pending student verifications found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(students), "students": students})
}

func (h *AdminHandler) Recruiters(c *gin.Context) {
	recruiters, err := h.Users.ListRecruiters(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching recruiters", "error": err.Error()})
		return
	}
	if len(recruiters) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": true, "message": "No recruiters found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(recruiters), "recruiters": recruiters})
}

func (h *AdminHandler) AllApplications(c *gin.Context) {
	rows, err := h.Applications.ListAllDetailed(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching applications", "error": err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No applications found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "applications": rows})
}
