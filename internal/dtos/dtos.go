package dtos

import "github.com/hirestream/hirestream/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ApplyRequest struct {
	JobID uint `json:"jobId" binding:"required"`
	// Optional resume URL snapshot stored on the application.
	Resume string `json:"resume"`
}

type JobCreationRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	JobType      string   `json:"jobType"`
	WorkMode     string   `json:"workMode"`
	Salary       string   `json:"salary"`
	Experience   string   `json:"experience"`
	Openings     int      `json:"openings"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	// Accepted as RFC 3339 or YYYY-MM-DD.
	LastDate string `json:"lastDate"`
}

// HasAllFields reports whether every posting field was provided. The
// endpoint answers with one catch-all message, so a bool is enough.
func (r *JobCreationRequest) HasAllFields() bool {
	return r.Title != "" && r.Company != "" && r.Location != "" &&
		r.JobType != "" && r.WorkMode != "" && r.Salary != "" &&
		r.Experience != "" && r.Openings != 0 && len(r.Skills) != 0 &&
		r.Description != "" && r.Requirements != "" && r.LastDate != ""
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// InterviewCreateRequest carries every scheduling field. Nothing is
// hard-required at the API layer.
type InterviewCreateRequest struct {
	CandidateID     uint   `json:"candidateId"`
	CandidateName   string `json:"candidateName"`
	JobTitle        string `json:"jobTitle"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        int    `json:"duration"`
	Mode            string `json:"mode"`
	Location        string `json:"location"`
	InterviewerName string `json:"interviewerName"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
}

// InterviewUpdateRequest is a partial overwrite; only non-nil fields are
// written.
type InterviewUpdateRequest struct {
	CandidateID     *uint   `json:"candidateId"`
	CandidateName   *string `json:"candidateName"`
	JobTitle        *string `json:"jobTitle"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Duration        *int    `json:"duration"`
	Mode            *string `json:"mode"`
	Location        *string `json:"location"`
	InterviewerName *string `json:"interviewerName"`
	Notes           *string `json:"notes"`
	Status          *string `json:"status"`
}

// Updates flattens the set fields into a gorm update map.
func (r *InterviewUpdateRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.CandidateID != nil {
		updates["candidate_id"] = *r.CandidateID
	}
	if r.CandidateName != nil {
		updates["candidate_name"] = *r.CandidateName
	}
	if r.JobTitle != nil {
		updates["job_title"] = *r.JobTitle
	}
	if r.Date != nil {
		updates["date"] = *r.Date
	}
	if r.Time != nil {
		updates["time"] = *r.Time
	}
	if r.Duration != nil {
		updates["duration"] = *r.Duration
	}
	if r.Mode != nil {
		updates["mode"] = *r.Mode
	}
	if r.Location != nil {
		updates["location"] = *r.Location
	}
	if r.InterviewerName != nil {
		updates["interviewer_name"] = *r.InterviewerName
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}

type VerifyJobRequest struct {
	JobID      uint        `json:"jobId" binding:"required"`
	IsVerified models.Flag `json:"isVerified"`
}

type VerifyStudentRequest struct {
	IsVerified models.Flag `json:"isVerified"`
}
