// balance.go - Handles the balance lookup for the authenticated user

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For gorm error checks
	"log"      // Logging
	"net/http" // HTTP status codes

	"kodbank-backend/middleware" // Context keys set by the auth middleware
	"kodbank-backend/models"     // User model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM
)

// GetBalance returns the balance of the user identified by the verified token.
// Read-only and idempotent: the balance is never mutated by any endpoint.
func (h *Handler) GetBalance(c *gin.Context) {
	uname := c.GetString(middleware.CtxUname) // Username set by the auth middleware
	if uname == "" {                          // Only reachable if the route was wired without the middleware
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	var user models.User
	if err := h.DB.Where("uname = ?", uname).First(&user).Error; err != nil { // Find user by uname
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Println("Error fetching balance:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": user.Balance}) // Return the balance unmodified
}
