package services

import (
	"errors"
	"strings"
	"time"

	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
	// RequireVerified gates new applications on the job's and the student's
	// verification flags when set.
	RequireVerified bool
}

func NewApplicationService(db *gorm.DB, requireVerified bool) *ApplicationService {
	return &ApplicationService{DB: db, RequireVerified: requireVerified}
}

// Apply records a student's application exactly once per (student, job)
// pair. The friendly pre-check covers the double-click path; the composite
// unique index catches the race two concurrent requests would otherwise win
// together.
func (s *ApplicationService) Apply(studentID, jobID uint, resumeURL string) (*models.Application, error) {
	if s.RequireVerified {
		var job models.Job
		if err := s.DB.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotVerified
			}
			return nil, err
		}
		var student models.User
		if err := s.DB.First(&student, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotVerified
			}
			return nil, err
		}
		if !bool(job.IsVerified) || !bool(student.IsVerified) {
			return nil, ErrNotVerified
		}
	}

	var existing models.Application
	err := s.DB.Where("student_id = ? AND job_id = ?", studentID, jobID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	application := &models.Application{
		JobID:     jobID,
		StudentID: studentID,
		Status:    models.StatusApplied,
		ResumeURL: resumeURL,
		AppliedAt: time.Now(),
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return application, nil
}

// ApplicationWithJob is one row of a student-facing listing: the application
// plus the posting's display fields. Job is an empty object, not null, when
// the posting no longer resolves.
type ApplicationWithJob struct {
	ID        uint        `json:"id"`
	AppliedAt time.Time   `json:"appliedAt"`
	Status    string      `json:"status"`
	JobID     uint        `json:"jobId"`
	Job       interface{} `json:"job"`
}

// ListForStudent returns a student's applications newest first, enriched
// with their jobs in one batch query.
func (s *ApplicationService) ListForStudent(studentID uint, limit int) ([]ApplicationWithJob, error) {
	query := s.DB.Where("student_id = ?", studentID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	jobs, err := s.jobsByID(applications)
	if err != nil {
		return nil, err
	}

	rows := make([]ApplicationWithJob, 0, len(applications))
	for _, app := range applications {
		row := ApplicationWithJob{
			ID:        app.ID,
			AppliedAt: app.CreatedAt,
			Status:    app.Status,
			JobID:     app.JobID,
			Job:       map[string]interface{}{},
		}
		if job, ok := jobs[app.JobID]; ok {
			row.Job = job
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// StatusForJob looks up the caller's application to one job. Absence is
// reported as ErrNotFound; the handler treats that as a normal state.
func (s *ApplicationService) StatusForJob(studentID, jobID uint) (*models.Application, error) {
	var application models.Application
	err := s.DB.Where("student_id = ? AND job_id = ?", studentID, jobID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// UpdateStatus overwrites an application's status after checking the
// allow-list. No transition graph: any allowed status may follow any other.
func (s *ApplicationService) UpdateStatus(applicationID uint, status string) (*models.Application, error) {
	status = strings.ToLower(status)
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	var application models.Application
	if err := s.DB.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	application.Status = status
	if err := s.DB.Save(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// StatusCounts is the fixed-shape aggregate for a student's dashboard.
// Absent buckets stay zero; the five bucket keys never vary.
type StatusCounts struct {
	Total       int64 `json:"totalApplications"`
	Accepted    int64 `json:"accepted"`
	Rejected    int64 `json:"rejected"`
	Shortlisted int64 `json:"shortlisted"`
	Pending     int64 `json:"pending"`
	Applied     int64 `json:"applied"`
}

func (s *ApplicationService) StatusCounts(studentID uint) (*StatusCounts, error) {
	type bucket struct {
		Status string
		Count  int64
	}
	var buckets []bucket
	err := s.DB.Model(&models.Application{}).
		Select("status, count(*) as count").
		Where("student_id = ?", studentID).
		Group("status").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	counts := &StatusCounts{}
	for _, b := range buckets {
		counts.Total += b.Count
		switch strings.ToLower(b.Status) {
		case models.StatusAccepted:
			counts.Accepted += b.Count
		case models.StatusRejected:
			counts.Rejected += b.Count
		case models.StatusShortlisted:
			counts.Shortlisted += b.Count
		case models.StatusPending:
			counts.Pending += b.Count
		case models.StatusApplied:
			counts.Applied += b.Count
		}
	}
	return counts, nil
}

// RecruiterApplicationRow flattens an application with its job's posting
// fields and its student's contact fields, the shape the recruiter and
// admin dashboards consume. The single skills key carries the student's
// skills; name/email belong to the student, never the poster.
type RecruiterApplicationRow struct {
	ID        uint      `json:"id"`
	AppliedAt time.Time `json:"appliedAt"`
	Status    string    `json:"status"`
	JobID     uint      `json:"jobId"`
	StudentID uint      `json:"studentId"`

	Title      string     `json:"title,omitempty"`
	Company    string     `json:"company,omitempty"`
	Location   string     `json:"location,omitempty"`
	JobType    string     `json:"jobType,omitempty"`
	WorkMode   string     `json:"workMode,omitempty"`
	Salary     string     `json:"salary,omitempty"`
	Experience string     `json:"experience,omitempty"`
	Openings   int        `json:"openings,omitempty"`
	LastDate   *time.Time `json:"lastDate,omitempty"`
	PostedBy   uint       `json:"postedBy,omitempty"`

	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Department string   `json:"department,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
	IsVerified bool     `json:"isVerified"`
}

// ListAllDetailed returns every application, newest first, flattened with
// job and student fields fetched in one batch per entity type.
func (s *ApplicationService) ListAllDetailed(limit int) ([]RecruiterApplicationRow, error) {
	query := s.DB.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return s.flattenRows(applications)
}

// ListByStatus returns applications carrying one status, flattened the same
// way. The status must already be on the allow-list.
func (s *ApplicationService) ListByStatus(status string) ([]RecruiterApplicationRow, error) {
	status = strings.ToLower(status)
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}
	var applications []models.Application
	if err := s.DB.Where("status = ?", status).Find(&applications).Error; err != nil {
		return nil, err
	}
	return s.flattenRows(applications)
}

// StudentWithApplications is the recruiter's candidate-detail view.
func (s *ApplicationService) StudentWithApplications(studentID uint) (*models.User, []ApplicationWithJob, error) {
	var student models.User
	err := s.DB.Where("id = ? AND role = ?", studentID, models.RoleStudent).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	applications, err := s.ListForStudent(studentID, 0)
	if err != nil {
		return nil, nil, err
	}
	return &student, applications, nil
}

func (s *ApplicationService) flattenRows(applications []models.Application) ([]RecruiterApplicationRow, error) {
	jobs, err := s.jobsByID(applications)
	if err != nil {
		return nil, err
	}
	students, err := s.studentsByID(applications)
	if err != nil {
		return nil, err
	}

	rows := make([]RecruiterApplicationRow, 0, len(applications))
	for _, app := range applications {
		row := RecruiterApplicationRow{
			ID:        app.ID,
			AppliedAt: app.CreatedAt,
			Status:    app.Status,
			JobID:     app.JobID,
			StudentID: app.StudentID,
		}
		if job, ok := jobs[app.JobID]; ok {
			row.Title = job.Title
			row.Company = job.Company
			row.Location = job.Location
			row.JobType = job.JobType
			row.WorkMode = job.WorkMode
			row.Salary = job.Salary
			row.Experience = job.Experience
			row.Openings = job.Openings
			lastDate := job.LastDate
			row.LastDate = &lastDate
			row.PostedBy = job.PostedByID
		}
		if student, ok := students[app.StudentID]; ok {
			row.Name = student.Name
			row.Email = student.Email
			row.Phone = student.Phone
			row.Department = student.Department
			row.Skills = student.Skills
			row.ResumeURL = student.ResumeURL
			row.IsVerified = bool(student.IsVerified)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// jobsByID batch-fetches the distinct jobs referenced by a result set; one
// query regardless of row count.
func (s *ApplicationService) jobsByID(applications []models.Application) (map[uint]models.Job, error) {
	ids := make([]uint, 0, len(applications))
	seen := make(map[uint]bool)
	for _, app := range applications {
		if !seen[app.JobID] {
			seen[app.JobID] = true
			ids = append(ids, app.JobID)
		}
	}
	result := make(map[uint]models.Job, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var jobs []models.Job
	if err := s.DB.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, err
	}
	for _, job := range jobs {
		result[job.ID] = job
	}
	return result, nil
}

func (s *ApplicationService) studentsByID(applications []models.Application) (map[uint]models.User, error) {
	ids := make([]uint, 0, len(applications))
	seen := make(map[uint]bool)
	for _, app := range applications {
		if !seen[app.StudentID] {
			seen[app.StudentID] = true
			ids = append(ids, app.StudentID)
		}
	}
	result := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var students []models.User
	if err := s.DB.Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	for _, student := range students {
		result[student.ID] = student
	}
	return result, nil
}
