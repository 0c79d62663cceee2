// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For gorm error checks
	"log"      // Logging (best-effort token log failures)
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"kodbank-backend/config"     // Project config
	"kodbank-backend/middleware" // For the token cookie name
	"kodbank-backend/models"     // User and UserToken models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"                 // GORM ORM
)

const tokenTTL = time.Hour // Issued tokens (and their cookies) live for one hour

// Handler bundles the dependencies the HTTP handlers need.
// The database handle and config are constructed once in main and injected here.
type Handler struct {
	DB  *gorm.DB       // Database connection
	Cfg *config.Config // Project config (JWT secret)
}

func New(db *gorm.DB, cfg *config.Config) *Handler { // New builds a Handler with its dependencies
	return &Handler{DB: db, Cfg: cfg}
}

type RegisterInput struct { // Struct for registration input
	UID      string `json:"uid" binding:"required"`      // User ID (required)
	Uname    string `json:"uname" binding:"required"`    // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
	Email    string `json:"email" binding:"required"`    // Email (required)
	Phone    string `json:"phone" binding:"required"`    // Phone (required)
	Role     string `json:"role" binding:"required"`     // Role (required, must be "customer")
}

type LoginInput struct { // Struct for login input
	Uname    string `json:"uname" binding:"required"`    // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

func (h *Handler) Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput                          // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"}) // Return error if any field is missing
		return
	}
	if input.Role != "customer" { // Only customer accounts can be self-registered
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be customer"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := models.User{ // Create user struct; Balance is left to the column default (100000)
		UID:      input.UID,
		Uname:    input.Uname,
		Password: string(hash),
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     input.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil { // Save user to DB (single atomic insert)
		if errors.Is(err, gorm.ErrDuplicatedKey) { // uid or uname already taken
			c.JSON(http.StatusConflict, gin.H{"message": "User ID or username already exists"})
			return
		}
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"}) // Success response
}

func (h *Handler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	var user models.User // Declare user variable
	if err := h.DB.Where("uname = ?", input.Uname).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password so usernames cannot be probed
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		log.Println("Error fetching user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	// JWT generation
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"sub":  user.Uname,              // Token subject is the username
		"role": user.Role,               // Role claim for downstream handlers
		"iat":  now.Unix(),              // Issued at
		"exp":  now.Add(tokenTTL).Unix(), // Expiration (1 hour)
	})
	tokenString, err := token.SignedString([]byte(h.Cfg.JWTSecret)) // Sign token
	if err != nil {
		log.Println("Error signing token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Record the issued token in the token log. This is best-effort: a failed
	// insert is logged but never fails the login.
	go func(db *gorm.DB, uname, tok string) {
		entry := models.UserToken{Uname: uname, Token: tok}
		if err := db.Create(&entry).Error; err != nil {
			log.Println("Error saving token:", err)
		}
	}(h.DB, user.Uname, tokenString)

	// Deliver the token as an HTTP-only, same-site=lax cookie matching the token TTL
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, tokenString, int(tokenTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"}) // Success response
}
