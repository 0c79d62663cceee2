// main.go - Entry point for the Kodbank backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"kodbank-backend/config"     // Project config management
	"kodbank-backend/database"   // Database connection and setup
	"kodbank-backend/handlers"   // HTTP handlers for API endpoints
	"kodbank-backend/middleware" // Middleware (JWT cookie authentication)

	"github.com/gin-contrib/cors" // CORS middleware for the frontend origin
	"github.com/gin-gonic/gin"    // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and open the database
	cfg := config.Load() // Load configuration (port, DB path, JWT secret, frontend origin)

	db, err := database.Connect(cfg.DBPath) // Open SQLite DB and run migrations
	if err != nil {                         // If error, log and exit
		log.Fatal("DB connection error: ", err)
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// The frontend sends the token cookie, so credentialed CORS is restricted
	// to the single configured origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	h := handlers.New(db, cfg) // Handlers get the DB handle and config injected

	// Public routes (no authentication required)
	r.POST("/api/register", h.Register) // Public route: user registration
	r.POST("/api/login", h.Login)       // Public route: user login

	// Protected routes (require a valid token cookie)
	api := r.Group("/api")                            // Create a route group for protected endpoints
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret)) // Apply JWT cookie authentication middleware
	{
		api.GET("/balance", h.GetBalance) // Protected: check account balance
	}

	// STEP 3: Start the web server
	log.Printf("Kodbank backend running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
