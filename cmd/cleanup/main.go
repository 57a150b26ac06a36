package main

import (
	"fmt"
	"log"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
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

	fmt.Println("Start cleanup...")

	// Authors before publications; the rest are independent
	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Author{}).Error; err != nil {
		log.Fatalf("Failed to delete authors: %v", err)
	}
	fmt.Println("✅ Deleted all authors")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Publication{}).Error; err != nil {
		log.Fatalf("Failed to delete publications: %v", err)
	}
	fmt.Println("✅ Deleted all publications")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ResearchProject{}).Error; err != nil {
		log.Fatalf("Failed to delete research projects: %v", err)
	}
	fmt.Println("✅ Deleted all research projects")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.News{}).Error; err != nil {
		log.Fatalf("Failed to delete news: %v", err)
	}
	fmt.Println("✅ Deleted all news")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Member{}).Error; err != nil {
		log.Fatalf("Failed to delete members: %v", err)
	}
	fmt.Println("✅ Deleted all members")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ResearchArea{}).Error; err != nil {
		log.Fatalf("Failed to delete research areas: %v", err)
	}
	fmt.Println("✅ Deleted all research areas")

	if err := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ContactMessage{}).Error; err != nil {
		log.Fatalf("Failed to delete contact messages: %v", err)
	}
	fmt.Println("✅ Deleted all contact messages")

	fmt.Println("Cleanup finished successfully")
}
