package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/services"
	"github.com/hirestream/hirestream/internal/storage"
)

// StudentHandler serves the /student namespace: profile, job browsing,
// application aggregate, interviews, and the resume-parse endpoint.
type StudentHandler struct {
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Interviews   *services.InterviewService
	Resume       *services.ResumeService
	Uploader     storage.Uploader
}

func NewStudentHandler(
	users *services.UserService,
	jobs *services.JobService,
	applications *services.ApplicationService,
	interviews *services.InterviewService,
	resumeSvc *services.ResumeService,
	uploader storage.Uploader,
) *StudentHandler {
	return &StudentHandler{
		Users:        users,
		Jobs:         jobs,
		Applications: applications,
		Interviews:   interviews,
		Resume:       resumeSvc,
		Uploader:     uploader,
	}
}

func (h *StudentHandler) GetProfile(c *gin.Context) {
	claims := auth.FromContext(c)
	student, err := h.Users.GetStudent(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Student not found"})
		case errors.Is(err, services.ErrNotStudent):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Not a student account."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": student})
}

// UpdateProfile is PUT /student/profile: multipart form fields plus an
// optional resume file that goes to blob storage first.
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	claims := auth.FromContext(c)

	updates := map[string]string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				updates[key] = values[0]
			}
		}
	} else {
		// Plain form bodies still work without the multipart wrapper.
		if err := c.Request.ParseForm(); err == nil {
			for key, values := range c.Request.PostForm {
				if len(values) > 0 {
					updates[key] = values[0]
				}
			}
		}
	}

	if file, err := c.FormFile("resume"); err == nil {
		if h.Uploader == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "resume storage is not configured"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating profile", "error": err.Error()})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating profile", "error": err.Error()})
			return
		}
		url, err := h.Uploader.UploadResume(c.Request.Context(), data)
		if err != nil {
			log.Println("resume upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating profile", "error": err.Error()})
			return
		}
		updates["resumeUrl"] = url
	}

	profile, err := h.Users.UpdateProfile(claims.UserID, updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating profile", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
}

// VerifiedJobs is GET /student/jobs: only admin-verified postings.
func (h *StudentHandler) VerifiedJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListVerified(queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching verified jobs", "error": err.Error()})
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No verified jobs found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(jobs), "jobs": jobs})
}

func (h *StudentHandler) VerifiedJobByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.GetVerifiedByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Verified job not found or not verified yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching verified job", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": job})
}

// StatusCounts is GET /student/applications/status: the five fixed buckets
// plus the total.
func (h *StudentHandler) StatusCounts(c *gin.Context) {
	claims := auth.FromContext(c)
	counts, err := h.Applications.StatusCounts(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching application status counts", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"totalApplications": counts.Total,
		"accepted":          counts.Accepted,
		"rejected":          counts.Rejected,
		"shortlisted":       counts.Shortlisted,
		"pending":           counts.Pending,
		"applied":           counts.Applied,
		"message":           "Application status counts fetched successfully",
	})
}

// MyInterviews is GET /student/interviews, chronological.
func (h *StudentHandler) MyInterviews(c *gin.Context) {
	claims := auth.FromContext(c)
	interviews, err := h.Interviews.ListForCandidate(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": interviews})
}

// ParseResume is POST /student/parse-resume: the ingestion pipeline. A
// model response that is not valid JSON degrades to ok:false instead of
// failing the request.
func (h *StudentHandler) ParseResume(c *gin.Context) {
	if h.Resume == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resume parsing is not configured"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Resume.Parse(c.Request.Context(), data)
	if err != nil {
		log.Println("resume parse failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusOK, gin.H{
			"ok":        false,
			"message":   "Model did not return valid JSON.",
			"modelText": result.ModelText,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "parsed": result.Parsed})
}
