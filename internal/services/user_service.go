package services

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a student account. Self-registration never produces
// recruiter or admin roles.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleStudent,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetStudent loads a user and confirms the account is a student.
func (s *UserService) GetStudent(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}
	return &user, nil
}

// profileFields is the set of keys a student may change through the profile
// endpoint. Email, role and password are deliberately absent.
var profileFields = map[string]bool{
	"name": true, "phone": true, "rollNumber": true, "department": true,
	"year": true, "cgpa": true, "skills": true, "bio": true,
	"dateOfBirth": true, "address": true, "city": true, "state": true,
	"pincode": true, "linkedinUrl": true, "githubUrl": true,
	"portfolioUrl": true, "resumeUrl": true,
}

// UpdateProfile applies the allowed subset of updates to a student record
// and returns the fresh document. Values arrive as form strings; skills may
// be a JSON-encoded array.
func (s *UserService) UpdateProfile(studentID uint, updates map[string]string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for key, value := range updates {
		if !profileFields[key] {
			continue
		}
		switch key {
		case "name":
			user.Name = value
		case "phone":
			user.Phone = value
		case "rollNumber":
			user.RollNumber = value
		case "department":
			user.Department = value
		case "year":
			user.Year = value
		case "cgpa":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				user.Cgpa = f
			}
		case "skills":
			user.Skills = parseSkills(value)
		case "bio":
			user.Bio = value
		case "dateOfBirth":
			user.DateOfBirth = value
		case "address":
			user.Address = value
		case "city":
			user.City = value
		case "state":
			user.State = value
		case "pincode":
			user.Pincode = value
		case "linkedinUrl":
			user.LinkedinURL = value
		case "githubUrl":
			user.GithubURL = value
		case "portfolioUrl":
			user.PortfolioURL = value
		case "resumeUrl":
			user.ResumeURL = value
		}
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// parseSkills accepts either a JSON array string or a bare comma-free value.
func parseSkills(value string) []string {
	var skills []string
	if err := json.Unmarshal([]byte(value), &skills); err == nil {
		return skills
	}
	if value == "" {
		return nil
	}
	return []string{value}
}

// SetVerified flips the verification flag on a user.
func (s *UserService) SetVerified(userID uint, verified bool) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.IsVerified = models.Flag(verified)
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListStudents() ([]models.User, error) {
	var students []models.User
	err := s.DB.Where("role = ?", models.RoleStudent).Find(&students).Error
	return students, err
}

// ListPendingVerifications returns unverified students, newest first.
func (s *UserService) ListPendingVerifications(limit int) ([]models.User, error) {
	query := s.DB.Where("role = ? AND is_verified = ?", models.RoleStudent, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var students []models.User
	err := query.Find(&students).Error
	return students, err
}

func (s *UserService) ListRecruiters(limit int) ([]models.User, error) {
	query := s.DB.Where("role = ?", models.RoleRecruiter).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recruiters []models.User
	err := query.Find(&recruiters).Error
	return recruiters, err
}
