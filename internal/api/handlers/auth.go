package handlers

import (
	"time"

	"github.com/Mo2025mo/la-automotive/internal/api/middleware"
	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	account, err := h.authService.Authenticate(req.Username, req.Password, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		// Generic message: never reveal which of the two fields was wrong.
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expiresAt, err := h.generateToken(account)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success":   true,
		"username":  account.Username,
		"role":      account.Role,
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Logout records the end of the admin session. The session duration comes
// from the token's issue time, not from anything the client sends.
func (h *AuthHandler) Logout(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	role := c.GetString(middleware.ContextRole)

	duration := 0
	if issuedAt, exists := c.Get(middleware.ContextIssuedAt); exists {
		duration = int(time.Since(issuedAt.(time.Time)).Seconds())
	}

	h.authService.Logout(username, role, c.ClientIP(), duration)

	c.JSON(200, gin.H{"success": true})
}

// GetMe returns the authenticated account
func (h *AuthHandler) GetMe(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	account, err := h.authService.Account(username)
	if err != nil {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(200, account)
}

// GetAccounts lists the configured admin accounts. Accounts are immutable at
// runtime, so this surface is read-only.
func (h *AuthHandler) GetAccounts(c *gin.Context) {
	c.JSON(200, gin.H{"accounts": h.authService.Accounts()})
}

// generateToken signs a session token for the account
func (h *AuthHandler) generateToken(account *models.AdminAccount) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(h.cfg.JWT.ExpiresIn)
	if err != nil {
		expiresIn = services.SessionTTL
	}

	now := time.Now()
	expiresAt := now.Add(expiresIn)

	claims := jwt.MapClaims{
		"username":    account.Username,
		"role":        account.Role,
		"full_access": account.FullAccess,
		"exp":         expiresAt.Unix(),
		"iat":         now.Unix(),
		"iss":         h.cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.cfg.JWT.SecretKey())
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
