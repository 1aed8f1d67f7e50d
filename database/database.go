package database

import (
	"fmt"
	"log"

	"pcl-backend/config"
	"pcl-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect establishes a connection to PostgreSQL, runs migrations and seeds
// the default admin account. TranslateError is enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedDefaultAdmin(db, cfg.SaltRound); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Admin{},
		&models.Course{},
		&models.Payment{},
		&models.InternshipPosting{},
		&models.InternshipApplication{},
		&models.ProjectPosting{},
		&models.ProjectEnrollment{},
		&models.CourseEnrollment{},
		&models.DemoRequest{},
		&models.Inquiry{},
		&models.PclInfo{},
		&models.Internship{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// SeedDefaultAdmin creates the bootstrap admin account when none exists.
// The credentials are meant to be changed right after first login.
func SeedDefaultAdmin(db *gorm.DB, saltRound int) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), saltRound)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     "admin",
		Email:        "admin@pclinfo.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Default admin created")
	return nil
}
