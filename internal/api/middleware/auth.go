package middleware

import (
	"strings"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware
const (
	ContextUsername   = "username"
	ContextRole       = "role"
	ContextFullAccess = "full_access"
	ContextIssuedAt   = "issued_at"
)

// AuthMiddleware validates the bearer token and loads the session identity
// into the request context. Session validity is enforced here, server-side;
// client-held state is never trusted for expiry or role.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return cfg.JWT.SecretKey(), nil
		})
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		issuedAt, err := claims.GetIssuedAt()
		if err != nil || issuedAt == nil {
			c.JSON(401, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if !services.SessionValid(issuedAt.Time, time.Now()) {
			c.JSON(401, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}

		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		fullAccess, _ := claims["full_access"].(bool)

		c.Set(ContextUsername, username)
		c.Set(ContextRole, role)
		c.Set(ContextFullAccess, fullAccess)
		c.Set(ContextIssuedAt, issuedAt.Time)

		c.Next()
	}
}

// RequireRole restricts a route to the given roles. The activity ledger
// views are Owner-only; enforcing that here rather than in the client is
// what keeps a fabricated client session from reading them.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userRole := role.(string)
		hasRole := false
		for _, r := range roles {
			if userRole == r {
				hasRole = true
				break
			}
		}

		if !hasRole {
			c.JSON(403, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
