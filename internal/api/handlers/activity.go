package handlers

import (
	"strconv"

	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivities returns the most recent admin activity, newest first.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	c.JSON(200, h.activityService.Recent(limit))
}

// GetLoginStats returns per-account login statistics.
func (h *ActivityHandler) GetLoginStats(c *gin.Context) {
	c.JSON(200, h.activityService.LoginStats())
}

// CheckSuspicious returns the suspicious-activity verdict for one account.
// Advisory only; nothing is blocked on the strength of it.
func (h *ActivityHandler) CheckSuspicious(c *gin.Context) {
	username := c.Param("username")
	c.JSON(200, gin.H{
		"username":   username,
		"suspicious": h.activityService.IsSuspicious(username),
	})
}
