package services

import (
	"errors"

	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/gorm"
)

type InterviewService struct {
	DB *gorm.DB
}

func NewInterviewService(db *gorm.DB) *InterviewService {
	return &InterviewService{DB: db}
}

func (s *InterviewService) Create(req *dtos.InterviewCreateRequest) (*models.Interview, error) {
	interview := &models.Interview{
		CandidateID:     req.CandidateID,
		CandidateName:   req.CandidateName,
		JobTitle:        req.JobTitle,
		Date:            req.Date,
		Time:            req.Time,
		Duration:        req.Duration,
		Mode:            req.Mode,
		Location:        req.Location,
		InterviewerName: req.InterviewerName,
		Notes:           req.Notes,
		Status:          req.Status,
	}
	if interview.Status == "" {
		interview.Status = models.InterviewScheduled
	}
	if interview.Duration == 0 {
		interview.Duration = 60
	}
	if interview.Mode == "" {
		interview.Mode = "Video Call"
	}
	if err := s.DB.Create(interview).Error; err != nil {
		return nil, err
	}
	return interview, nil
}

// Update applies a partial overwrite and returns the fresh record.
func (s *InterviewService) Update(id uint, req *dtos.InterviewUpdateRequest) (*models.Interview, error) {
	var interview models.Interview
	if err := s.DB.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return &interview, nil
	}
	if err := s.DB.Model(&interview).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

// UpdateStatus sets the lifecycle status. Transitions are deliberately
// unconstrained; a completed interview may go back to scheduled.
func (s *InterviewService) UpdateStatus(id uint, status string) (*models.Interview, error) {
	var interview models.Interview
	if err := s.DB.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	interview.Status = status
	if err := s.DB.Save(&interview).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

// ListFilters narrows List; zero values mean "no filter". Date is an exact
// string match against the stored date.
type ListFilters struct {
	CandidateID uint
	JobTitle    string
	Date        string
	Limit       int
}

// List returns interviews newest-created first (not chronological by
// interview date).
func (s *InterviewService) List(filters ListFilters) ([]models.Interview, error) {
	query := s.DB.Order("created_at DESC")
	if filters.CandidateID != 0 {
		query = query.Where("candidate_id = ?", filters.CandidateID)
	}
	if filters.JobTitle != "" {
		query = query.Where("job_title = ?", filters.JobTitle)
	}
	if filters.Date != "" {
		query = query.Where("date = ?", filters.Date)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	var interviews []models.Interview
	err := query.Find(&interviews).Error
	return interviews, err
}

// ListForCandidate is the student view, sorted chronologically.
func (s *InterviewService) ListForCandidate(candidateID uint) ([]models.Interview, error) {
	var interviews []models.Interview
	err := s.DB.Where("candidate_id = ?", candidateID).
		Order("date ASC, time ASC").
		Find(&interviews).Error
	return interviews, err
}

// Delete verifies existence first so an unknown id is a clean not-found.
func (s *InterviewService) Delete(id uint) error {
	var interview models.Interview
	if err := s.DB.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Delete(&interview).Error
}
