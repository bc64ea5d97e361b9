package database

import (
	"log"

	"github.com/hirestream/hirestream/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the schema. TranslateError lets
// the application layer catch unique-key conflicts as gorm.ErrDuplicatedKey.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.Interview{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
