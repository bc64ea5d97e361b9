package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/gorm"
)

// openTestDB gives each test its own in-memory database with the production
// schema. MaxOpenConns(1) keeps gorm's pool on the single connection the
// in-memory database lives on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.Interview{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, email string, verified bool) *models.User {
	t.Helper()
	student := &models.User{
		Name:       "Test Student",
		Email:      email,
		Password:   "hashed",
		Role:       models.RoleStudent,
		IsVerified: models.Flag(verified),
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func seedJob(t *testing.T, db *gorm.DB, title string, verified bool, lastDate time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:        title,
		Company:      "Acme Corp",
		Location:     "Remote",
		JobType:      "Full-time",
		WorkMode:     "Remote",
		Salary:       "10 LPA",
		Experience:   "0-1 years",
		Openings:     3,
		Skills:       []string{"Go", "SQL"},
		Description:  "Build things",
		Requirements: "Ship things",
		LastDate:     lastDate,
		PostedByID:   1,
		IsVerified:   models.Flag(verified),
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}
