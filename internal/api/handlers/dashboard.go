package handlers

import (
	"github.com/Mo2025mo/la-automotive/internal/models"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	inquiryService  *services.InquiryService
	activityService *services.ActivityService
}

func NewDashboardHandler(inquiryService *services.InquiryService, activityService *services.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		inquiryService:  inquiryService,
		activityService: activityService,
	}
}

// GetSummary returns the counters shown at the top of the dashboard.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	inquiries := h.inquiryService.List()

	newCount := 0
	for _, inquiry := range inquiries {
		if inquiry.Status == models.InquiryNew {
			newCount++
		}
	}

	c.JSON(200, gin.H{
		"totalInquiries": len(inquiries),
		"newInquiries":   newCount,
		"activityCount":  h.activityService.Count(),
	})
}
