package main

import (
	"log"
	"os"
	"time"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/handlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	if err := database.Connect(); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close()

	// Setup Gin router
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(config))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Serve uploaded files statically
	uploadDir := handlers.UploadDir()
	log.Printf("📁 Serving uploads from: %s", uploadDir)
	router.Static("/static", uploadDir)

	// API Routes
	api := router.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", handlers.AuthMiddleware(), handlers.Me)
		}

		// Admin routes for account approval and contact review
		admin := api.Group("/admin", handlers.AuthMiddleware(), handlers.AdminRequired())
		{
			admin.GET("/users/pending", handlers.GetPendingUsers)
			admin.POST("/users/:id/approve", handlers.ApproveUser)
		}

		// Publication routes
		publications := api.Group("/publications")
		{
			publications.GET("", handlers.GetPublications)
			publications.GET("/recent", handlers.GetRecentPublications)

			authed := publications.Group("", handlers.AuthMiddleware())
			{
				authed.POST("", handlers.CreatePublication)
				authed.PUT("/:id", handlers.UpdatePublication)
				authed.PATCH("/:id/order", handlers.UpdatePublicationOrder)
				authed.DELETE("/:id", handlers.DeletePublication)
				authed.POST("/:id/authors", handlers.CreatePublicationAuthor)
			}
		}

		// Research project routes
		research := api.Group("/research")
		{
			research.GET("", handlers.GetResearchProjects)
			research.POST("", handlers.AuthMiddleware(), handlers.CreateResearchProject)
		}

		// News routes
		news := api.Group("/news")
		{
			news.GET("", handlers.GetNews)
			news.GET("/recent", handlers.GetRecentNews)
			news.GET("/:id", handlers.GetNewsItem)

			authed := news.Group("", handlers.AuthMiddleware())
			{
				authed.POST("", handlers.CreateNews)
				authed.PUT("/:id", handlers.UpdateNews)
				authed.DELETE("/:id", handlers.DeleteNews)
			}
		}

		// Member routes
		members := api.Group("/members")
		{
			members.GET("", handlers.GetMembers)
			members.GET("/grouped", handlers.GetGroupedMembers)

			authed := members.Group("", handlers.AuthMiddleware())
			{
				authed.POST("", handlers.CreateMember)
				authed.PUT("/:id", handlers.UpdateMember)
				authed.DELETE("/:id", handlers.DeleteMember)
			}
		}

		// Research area routes
		areas := api.Group("/research-areas")
		{
			areas.GET("", handlers.GetResearchAreas)
			areas.GET("/:id", handlers.GetResearchArea)

			authed := areas.Group("", handlers.AuthMiddleware())
			{
				authed.POST("", handlers.CreateResearchArea)
				authed.PUT("/:id", handlers.UpdateResearchArea)
				authed.DELETE("/:id", handlers.DeleteResearchArea)
			}
		}

		// Lab info routes
		labInfo := api.Group("/lab-info")
		{
			labInfo.GET("", handlers.GetLabInfo)
			labInfo.PUT("", handlers.AuthMiddleware(), handlers.UpsertLabInfo)
		}

		// Contact routes
		contact := api.Group("/contact")
		{
			contact.POST("", handlers.SubmitContactForm)

			adminOnly := contact.Group("", handlers.AuthMiddleware(), handlers.AdminRequired())
			{
				adminOnly.GET("", handlers.GetContactMessages)
				adminOnly.DELETE("/:id", handlers.DeleteContactMessage)
			}
		}

		// Upload route
		api.POST("/upload", handlers.AuthMiddleware(), handlers.UploadFile)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
