package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/models"
	"github.com/gilab/backend/store"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	if err := database.Connect(); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close()

	fmt.Println("🌱 Starting seed...")

	seedAdminUser()
	seedLabInfo()

	fmt.Println("Seed finished successfully")
}

// seedAdminUser ensures an approved admin account exists.
func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@gilab.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-on-first-login"
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Println("Admin user already exists, skipping")
		return
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash password: %v", err)
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hashedBytes),
		FirstName:    "Lab",
		LastName:     "Admin",
		IsApproved:   true,
		IsAdmin:      true,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to create admin user: %v", err)
	} else {
		fmt.Printf("✅ Admin user seeded (%s)\n", email)
	}
}

// seedLabInfo inserts starter lab settings unless they were set already.
func seedLabInfo() {
	existing, err := store.GetLabInfo(database.DB)
	if err != nil {
		log.Printf("❌ Failed to check lab info: %v", err)
		return
	}
	if existing != nil {
		fmt.Println("Lab info already configured, skipping")
		return
	}

	if _, err := store.UpsertLabInfo(database.DB, store.LabInfoInput{
		LabName:               "Generative Intelligence Lab",
		PrincipalInvestigator: "TBD",
		PITitle:               "Professor",
		Address:               "TBD",
		University:            "TBD",
		Department:            "TBD",
		ContactEmail:          "contact@gilab.local",
	}); err != nil {
		log.Printf("❌ Failed to seed lab info: %v", err)
	} else {
		fmt.Println("✅ Lab info seeded")
	}
}
