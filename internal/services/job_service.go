package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hirestream/hirestream/internal/dtos"
	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// ParseDeadline accepts the two date shapes clients send for lastDate.
func ParseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("lastDate %q: %w", value, ErrBadDeadline)
}

func (s *JobService) Create(req *dtos.JobCreationRequest, postedBy uint) (*models.Job, error) {
	lastDate, err := ParseDeadline(req.LastDate)
	if err != nil {
		return nil, err
	}
	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		WorkMode:     req.WorkMode,
		Salary:       req.Salary,
		Experience:   req.Experience,
		Openings:     req.Openings,
		Skills:       req.Skills,
		Description:  req.Description,
		Requirements: req.Requirements,
		LastDate:     lastDate,
		PostedByID:   postedBy,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Find(&jobs).Error
	return jobs, err
}

// ListActive returns postings whose deadline has not passed, newest first,
// with the poster attached.
func (s *JobService) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("last_date >= ?", time.Now()).
		Preload("PostedBy").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// ListVerified is the student-facing listing: only admin-verified postings
// appear, newest first.
func (s *JobService) ListVerified(limit int) ([]models.Job, error) {
	query := s.DB.Where("is_verified = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var jobs []models.Job
	err := query.Find(&jobs).Error
	return jobs, err
}

// GetVerifiedByID resolves a single verified posting; an unverified or
// unknown id is a not-found either way.
func (s *JobService) GetVerifiedByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND is_verified = ?", id, true).
		Preload("PostedBy").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// SetVerified flips the verification flag on a posting.
func (s *JobService) SetVerified(jobID uint, verified bool) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	job.IsVerified = models.Flag(verified)
	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
