// user_test.go - Automated tests for user registration and login handlers
// Run with: go test ./...

package handlers

import (
	"bytes"         // For building request bodies
	"encoding/json" // For encoding/decoding JSON
	"net/http"      // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"os"            // For file operations
	"testing"       // Go's testing package

	"kodbank-backend/config"   // Project config
	"kodbank-backend/database" // Database connection

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/golang-jwt/jwt/v5"       // JWT library
	"github.com/stretchr/testify/assert" // For assertions
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret" // Signing secret used by handler tests

// setupTestDB removes any existing test DB and creates a new one for each test run
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = os.Remove("test.db")               // Remove old test DB if exists
	db, err := database.Connect("test.db") // Connect and migrate
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove("test.db") })
	return db
}

// setupRouter returns a Gin engine with the user routes for testing
func setupRouter(db *gorm.DB) *gin.Engine {
	h := New(db, &config.Config{JWTSecret: testSecret})
	r := gin.Default()                // New Gin router
	r.POST("/api/register", h.Register) // Register endpoint
	r.POST("/api/login", h.Login)       // Login endpoint
	return r
}

// postJSON sends a JSON POST to the router and returns the recorded response
func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)                               // Encode input as JSON
	w := httptest.NewRecorder()                                    // Record HTTP response
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body)) // Build request
	req.Header.Set("Content-Type", "application/json")             // Set header
	router.ServeHTTP(w, req)                                       // Serve request
	return w
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		UID:      "u1",
		Uname:    "alice",
		Password: "pw",
		Email:    "a@x.com",
		Phone:    "123",
		Role:     "customer",
	}
}

// TestRegisterAndLogin tests user registration and login
func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)     // Prepare test DB
	router := setupRouter(db) // Prepare router

	// --- Test registration ---
	w := postJSON(router, "/api/register", validRegisterInput())
	assert.Equal(t, http.StatusCreated, w.Code) // Assert success

	// --- Test login ---
	login := LoginInput{Uname: "alice", Password: "pw"}
	w = postJSON(router, "/api/login", login)
	assert.Equal(t, http.StatusOK, w.Code) // Assert success

	// The token must arrive as an HTTP-only cookie whose subject is the username
	var tokenCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "kodbank_token" {
			tokenCookie = ck
		}
	}
	require.NotNil(t, tokenCookie, "login must set the kodbank_token cookie")
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, tokenCookie.SameSite)
	assert.Equal(t, 3600, tokenCookie.MaxAge)

	token, err := jwt.Parse(tokenCookie.Value, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "customer", claims["role"])

	// --- Test login with wrong password ---
	login.Password = "wrongpass"
	w = postJSON(router, "/api/login", login)
	assert.Equal(t, http.StatusUnauthorized, w.Code) // Should be unauthorized
	wrongPassBody := w.Body.String()

	// --- Test login with unknown username: identical status and message ---
	w = postJSON(router, "/api/login", LoginInput{Uname: "nobody", Password: "pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassBody, w.Body.String())
}

// TestRegisterDuplicate tests that uid/uname uniqueness is enforced
func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := postJSON(router, "/api/register", validRegisterInput())
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same uname, different uid
	dup := validRegisterInput()
	dup.UID = "u2"
	w = postJSON(router, "/api/register", dup)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same uid, different uname
	dup = validRegisterInput()
	dup.Uname = "bob"
	w = postJSON(router, "/api/register", dup)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The first registration is still intact and can log in
	w = postJSON(router, "/api/login", LoginInput{Uname: "alice", Password: "pw"})
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestRegisterValidation tests the input constraints on registration
func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	// Any role other than "customer" is rejected
	input := validRegisterInput()
	input.Role = "admin"
	w := postJSON(router, "/api/register", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Role must be customer")

	// Every field is required
	input = validRegisterInput()
	input.Phone = ""
	w = postJSON(router, "/api/register", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required")

	// Missing login fields are also a 400
	w = postJSON(router, "/api/login", LoginInput{Uname: "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestPasswordsAreHashed verifies the stored password is not the plaintext
func TestPasswordsAreHashed(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := postJSON(router, "/api/register", validRegisterInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var stored struct{ Password string }
	err := db.Table("users").Select("password").Where("uname = ?", "alice").Scan(&stored).Error
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.Password)
	assert.NotEmpty(t, stored.Password)
}
