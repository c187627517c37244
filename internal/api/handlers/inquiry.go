package handlers

import (
	"github.com/Mo2025mo/la-automotive/internal/api/middleware"
	"github.com/Mo2025mo/la-automotive/internal/models"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService  *services.InquiryService
	activityService *services.ActivityService
	vehicleService  *services.VehicleService
}

func NewInquiryHandler(inquiryService *services.InquiryService, activityService *services.ActivityService, vehicleService *services.VehicleService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService:  inquiryService,
		activityService: activityService,
		vehicleService:  vehicleService,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

type ServiceRequestPayload struct {
	FullName          string `json:"fullName" binding:"required"`
	PhoneNumber       string `json:"phoneNumber" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	RegistrationPlate string `json:"registrationPlate" binding:"required"`
	CarMake           string `json:"carMake" binding:"required"`
	CarModel          string `json:"carModel" binding:"required"`
	CarYear           string `json:"carYear" binding:"required"`
	IssueDescription  string `json:"issueDescription" binding:"required"`
	IssueCategory     string `json:"issueCategory" binding:"required"`
	ContactMethod     string `json:"contactMethod" binding:"required"`
}

type PriceMatchRequest struct {
	PartName        string `json:"partName" binding:"required"`
	CompetitorPrice string `json:"competitorPrice" binding:"required"`
	StoreName       string `json:"storeName" binding:"required"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
}

// SubmitContact ingests the general contact form.
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid contact data", "details": err.Error()})
		return
	}

	inquiry := h.inquiryService.Submit(services.ContactInquiry(req.Name, req.Email, req.Phone, req.Message))

	c.JSON(200, gin.H{"success": true, "id": inquiry.ID})
}

// SubmitServiceRequest ingests the service request form.
func (h *InquiryHandler) SubmitServiceRequest(c *gin.Context) {
	var req ServiceRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid service request data", "details": err.Error()})
		return
	}

	inquiry := h.inquiryService.Submit(services.ServiceRequestInquiry(
		req.FullName, req.PhoneNumber, req.Email,
		req.RegistrationPlate, req.CarMake, req.CarModel, req.CarYear,
		req.IssueCategory, req.IssueDescription, req.ContactMethod,
	))

	c.JSON(200, gin.H{"success": true, "id": inquiry.ID})
}

// SubmitPriceMatch ingests the price match form and tracks the comparison
// as a visitor search.
func (h *InquiryHandler) SubmitPriceMatch(c *gin.Context) {
	var req PriceMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid price match data", "details": err.Error()})
		return
	}

	query := req.PartName + " - " + req.StoreName + " - £" + req.CompetitorPrice
	if err := h.vehicleService.RecordSearch("price_comparison", query, c.GetHeader("User-Agent"), c.ClientIP()); err != nil {
		c.JSON(500, gin.H{"error": "Failed to record price match"})
		return
	}

	inquiry := h.inquiryService.Submit(services.PriceMatchInquiry(
		req.PartName, req.CompetitorPrice, req.StoreName,
		req.CustomerEmail, req.CustomerPhone,
	))

	c.JSON(200, gin.H{"success": true, "id": inquiry.ID})
}

// GetInquiries lists inquiries for triage, newest first.
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	h.logAction(c, models.ActionViewInquiries)
	c.JSON(200, h.inquiryService.List())
}

// MarkRead transitions an inquiry to read. Idempotent.
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	if err := h.inquiryService.MarkRead(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"error": "Inquiry not found"})
		return
	}

	h.logAction(c, models.ActionMarkRead)
	c.JSON(200, gin.H{"success": true})
}

// DeleteInquiry removes an inquiry.
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	if err := h.inquiryService.Delete(c.Param("id")); err != nil {
		c.JSON(404, gin.H{"error": "Inquiry not found"})
		return
	}

	h.logAction(c, models.ActionDeleteInquiry)
	c.JSON(200, gin.H{"success": true})
}

func (h *InquiryHandler) logAction(c *gin.Context, action string) {
	h.activityService.LogAction(
		c.GetString(middleware.ContextUsername),
		c.GetString(middleware.ContextRole),
		action,
		c.ClientIP(),
		true,
	)
}
