// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"log" // Logging
	"os"  // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port           string // Port the HTTP server listens on
	DBPath         string // Path to the SQLite database file
	JWTSecret      string // Secret key for JWT signing and verification
	FrontendOrigin string // Origin allowed to make credentialed CORS requests
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	if err := godotenv.Load(); err != nil { // Load .env file if present
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "4000"),                             // Get port or use default
		DBPath:         getEnv("DB_PATH", "kodbank.db"),                    // Get DB path or use default
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-kodbank-key"),   // Development default, never deploy with it
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"), // Get frontend origin or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
