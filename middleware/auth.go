// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract JWT token from the kodbank_token cookie
// 2. Validate token signature and expiration
// 3. Extract username and role from token claims
// 4. Store them in the Gin context for handlers

package middleware // Declares the package name

import ( // Import required packages
	"fmt"      // For keyfunc errors
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// TokenCookie is the cookie the login handler sets and this middleware reads.
const TokenCookie = "kodbank_token"

// Context keys under which the verified identity is stored.
const (
	CtxUname = "uname" // Token subject (username)
	CtxRole  = "role"  // Role claim
)

// AuthMiddleware returns a Gin middleware that authenticates requests via the
// token cookie. The signing secret is injected by main rather than read from
// ambient state.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract the token cookie
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil { // Cookie absent
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		// STEP 2: Parse and verify the JWT (signature + expiry).
		// Bad signature, expired, and malformed all collapse into one message.
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok { // Only HMAC tokens are issued
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil // Provide secret key for validation
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		// STEP 3: Extract identity claims and store them in the context
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set(CtxUname, sub) // Store username in Gin context
		if role, ok := claims["role"].(string); ok {
			c.Set(CtxRole, role) // Store role in Gin context
		}

		c.Next() // Continue to next handler (authentication successful)
	}
}
