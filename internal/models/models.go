package models

import (
	"time"

	"gorm.io/gorm"
)

// User covers all three roles. Student-only profile fields stay empty for
// recruiters and admins.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`

	Phone       string   `json:"phone,omitempty"`
	RollNumber  string   `json:"rollNumber,omitempty"`
	Department  string   `json:"department,omitempty"`
	Year        string   `json:"year,omitempty"`
	Cgpa        float64  `json:"cgpa,omitempty"`
	Skills      []string `gorm:"serializer:json" json:"skills,omitempty"`
	Bio         string   `gorm:"type:text" json:"bio,omitempty"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	Pincode     string   `json:"pincode,omitempty"`

	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	GithubURL    string `json:"githubUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
	ResumeURL    string `json:"resumeUrl,omitempty"`

	IsVerified Flag `gorm:"default:false" json:"isVerified"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title        string    `gorm:"not null" json:"title"`
	Company      string    `gorm:"not null" json:"company"`
	Location     string    `gorm:"not null" json:"location"`
	JobType      string    `gorm:"not null" json:"jobType"`
	WorkMode     string    `gorm:"not null" json:"workMode"`
	Salary       string    `gorm:"not null" json:"salary"`
	Experience   string    `gorm:"not null" json:"experience"`
	Openings     int       `gorm:"not null" json:"openings"`
	Skills       []string  `gorm:"serializer:json" json:"skills"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	LastDate     time.Time `gorm:"not null" json:"lastDate"`

	PostedByID uint  `gorm:"not null;index" json:"postedBy"`
	PostedBy   *User `gorm:"foreignKey:PostedByID" json:"poster,omitempty"`

	IsVerified Flag `gorm:"default:false" json:"isVerified"`
}

// Application joins one student to one job. The composite unique index is
// the duplicate-apply guard: a second insert for the same pair fails with a
// key conflict instead of racing a check-then-insert.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	JobID     uint `gorm:"not null;uniqueIndex:idx_applications_job_student" json:"jobId"`
	StudentID uint `gorm:"not null;uniqueIndex:idx_applications_job_student;index" json:"studentId"`

	Status    string    `gorm:"default:'applied'" json:"status"`
	ResumeURL string    `json:"resumeUrl,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}

// Interview references the candidate by id; candidateName and jobTitle are
// display snapshots taken at scheduling time, not live joins to User/Job.
type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CandidateID   uint   `gorm:"not null;index" json:"candidateId"`
	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`

	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        int    `gorm:"default:60" json:"duration"`
	Mode            string `gorm:"default:'Video Call'" json:"mode"`
	Location        string `json:"location"`
	InterviewerName string `json:"interviewerName"`
	Notes           string `gorm:"type:text" json:"notes"`
	Status          string `gorm:"default:'scheduled'" json:"status"`
}
