package db

import (
	"log"
	"os"

	"ideahub/internal/models"
	"ideahub/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=ideahub port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the voting service relies on to resolve racing first votes.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Idea{},
		&models.Vote{},
		&models.Comment{},
		&models.CommentVote{},
		&models.StarRating{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCategories()
	seedAdmin()
}

func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return
	}

	categories := []models.Category{
		{Name: "Technology"},
		{Name: "Process Improvement"},
		{Name: "Customer Experience"},
		{Name: "Health"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created successfully")
}

// seedAdmin bootstraps one admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Email:    email,
		Password: hash,
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created")
}
