// main.go - QuizMaster training backend
package main

import (
	"log"
	"os"
	"time"

	"quizmaster/database"
	"quizmaster/handlers"
	"quizmaster/handlers/admin"
	"quizmaster/middleware"
	"quizmaster/repository"
	"quizmaster/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database and blob store
	database.InitDB()
	repo := repository.Init(store.NewGorm(database.GetDB()))

	// Seed baseline entities, then rewrite the curated content
	if err := repo.Init(); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Initialize quiz session manager
	handlers.InitQuizHandlers()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/recover", handlers.Recover)

	// Authenticated collaborator routes
	api.Get("/me", middleware.AuthMiddleware, handlers.Me)
	api.Get("/phases", middleware.AuthMiddleware, handlers.GetPhases)
	api.Get("/knowledge", middleware.AuthMiddleware, handlers.GetKnowledge)
	api.Get("/ranking", middleware.AuthMiddleware, handlers.GetRanking)

	// Quiz session routes
	quizGroup := api.Group("/quiz")
	quizGroup.Use(middleware.AuthMiddleware)
	quizGroup.Post("/start", handlers.StartPhase)
	quizGroup.Post("/answer", handlers.SubmitAnswer)
	quizGroup.Get("/session", handlers.GetSession)

	// Master administration routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.MasterAuthMiddleware)
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Put("/users/:id/toggle-active", admin.ToggleUserActive)
	adminGroup.Delete("/users/:id", admin.DeleteUser)
	adminGroup.Put("/users/:id/toggle-phase", admin.ToggleUserPhase)
	adminGroup.Put("/users/:id/unlock-all", admin.UnlockAllPhases)
	adminGroup.Get("/questions", admin.GetQuestions)
	adminGroup.Post("/questions", admin.SaveQuestion)
	adminGroup.Delete("/questions/:id", admin.DeleteQuestion)
	adminGroup.Get("/knowledge", admin.GetKnowledge)
	adminGroup.Post("/knowledge", admin.SaveKnowledge)
	adminGroup.Delete("/knowledge/:id", admin.DeleteKnowledge)
	adminGroup.Get("/phases", admin.GetPhases)
	adminGroup.Put("/phases/:number/toggle", admin.TogglePhase)
	adminGroup.Get("/stats", admin.GetStats)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
