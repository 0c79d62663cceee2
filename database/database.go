// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"kodbank-backend/models" // User and UserToken models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the SQLite database and runs migrations.
// The handle is returned to the caller instead of being kept in a package
// global, so main can construct it once and hand it to the handlers.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true, // Map driver errors (e.g. UNIQUE violations) to gorm errors
	})
	if err != nil { // If error, return it
		return nil, err
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.UserToken{}); err != nil {
		return nil, err
	}

	return db, nil
}
