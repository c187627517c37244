package handlers

import (
	"errors"

	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

type RecoveryHandler struct {
	recoveryService *services.RecoveryService
}

func NewRecoveryHandler(recoveryService *services.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recoveryService: recoveryService}
}

type RecoveryQuestionRequest struct {
	Username string `json:"username" binding:"required"`
}

type RecoveryRequest struct {
	Role           string `json:"role" binding:"required"`
	SecurityAnswer string `json:"securityAnswer" binding:"required"`
}

// GetQuestion resolves the security question for an account. The error for
// an unknown account is deliberately vague.
func (h *RecoveryHandler) GetQuestion(c *gin.Context) {
	var req RecoveryQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	question, err := h.recoveryService.Question(req.Username)
	if err != nil {
		c.JSON(404, gin.H{"error": "User not found. Please contact the system administrator for assistance."})
		return
	}

	c.JSON(200, gin.H{"question": question})
}

// Recover checks the security answer and reveals the role's recovery
// password on a match.
func (h *RecoveryHandler) Recover(c *gin.Context) {
	var req RecoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	password, err := h.recoveryService.Recover(req.Role, req.SecurityAnswer, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(401, gin.H{"error": "User not found. Please contact the system administrator for assistance."})
			return
		}
		c.JSON(401, gin.H{"error": "The security answer is incorrect. Please try again."})
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"temporaryAccess": password,
	})
}
