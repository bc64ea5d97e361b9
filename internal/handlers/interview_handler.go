package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/services"
)

type InterviewHandler struct {
	Interviews *services.InterviewService
}

func NewInterviewHandler(interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{Interviews: interviews}
}

func (h *InterviewHandler) Create(c *gin.Context) {
	var req dtos.InterviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error scheduling interview", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Interview scheduled successfully",
		"interview": interview,
	})
}

func (h *InterviewHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.InterviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON format: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating interview", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Interview updated successfully",
		"interview": interview,
	})
}

// List is GET /recruiter/interviews with optional candidateId, jobTitle,
// date and limit filters, newest created first.
func (h *InterviewHandler) List(c *gin.Context) {
	filters := services.ListFilters{
		JobTitle: c.Query("jobTitle"),
		Date:     c.Query("date"),
		Limit:    queryLimit(c),
	}
	if raw := c.Query("candidateId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filters.CandidateID = uint(id)
		}
	}

	interviews, err := h.Interviews.List(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching interviews", "error": err.Error()})
		return
	}
	message := "Interviews fetched successfully"
	if len(interviews) == 0 {
		message = "No interviews scheduled yet"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(interviews),
		"interviews": interviews,
		"message":    message,
	})
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Interviews.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting interview", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Interview deleted successfully",
		"deletedInterviewId": id,
	})
}

// UpdateStatus is the dedicated status endpoint. Transitions are not
// constrained against the current value.
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status field is required"})
		return
	}
	interview, err := h.Interviews.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating interview status", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Interview status updated successfully",
		"interview": interview,
	})
}
