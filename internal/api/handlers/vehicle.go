package handlers

import (
	"errors"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	cfg            *config.Config
}

func NewVehicleHandler(vehicleService *services.VehicleService, cfg *config.Config) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		cfg:            cfg,
	}
}

type VehicleLookupRequest struct {
	RegistrationPlate string `json:"registrationPlate" binding:"required"`
}

type TrackSearchRequest struct {
	SearchType  string `json:"searchType" binding:"required"`
	SearchQuery string `json:"searchQuery" binding:"required"`
}

// Lookup serves a registration plate from the local cache. A miss directs
// the customer to the garage; there is no live MOT/DVLA integration.
func (h *VehicleHandler) Lookup(c *gin.Context) {
	var req VehicleLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Registration plate is required"})
		return
	}

	if err := h.vehicleService.RecordSearch("vehicle_lookup", req.RegistrationPlate, c.GetHeader("User-Agent"), c.ClientIP()); err != nil {
		c.JSON(500, gin.H{"error": "Vehicle lookup failed"})
		return
	}

	vehicle, err := h.vehicleService.LookupByPlate(req.RegistrationPlate)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{
				"error":   "Vehicle lookup service",
				"message": "For vehicle information and MOT history, please contact " + h.cfg.Business.Name + " directly. Call " + h.cfg.Business.Phone + " or email " + h.cfg.Business.Email + " with your registration plate and we'll provide all the details you need.",
				"contactInfo": gin.H{
					"phone":   h.cfg.Business.Phone,
					"email":   h.cfg.Business.Email,
					"address": h.cfg.Business.Address,
					"hours":   h.cfg.Business.Hours,
				},
			})
			return
		}
		c.JSON(500, gin.H{"error": "Vehicle lookup failed"})
		return
	}

	c.JSON(200, vehicle)
}

// TrackSearch records a parts search from the storefront.
func (h *VehicleHandler) TrackSearch(c *gin.Context) {
	var req TrackSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Search type and query are required"})
		return
	}

	if err := h.vehicleService.RecordSearch(req.SearchType, req.SearchQuery, c.GetHeader("User-Agent"), c.ClientIP()); err != nil {
		c.JSON(400, gin.H{"error": "Failed to track search"})
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// GetSearchAnalytics summarizes visitor searches for the dashboard.
func (h *VehicleHandler) GetSearchAnalytics(c *gin.Context) {
	analytics, err := h.vehicleService.Analytics()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve analytics"})
		return
	}

	c.JSON(200, analytics)
}

// GetSuppliers returns the local parts supplier directory.
func (h *VehicleHandler) GetSuppliers(c *gin.Context) {
	suppliers := []gin.H{
		{
			"id":          1,
			"name":        "Hastings Auto Parts",
			"address":     "123 High Street, Hastings",
			"phone":       "01424 123456",
			"hours":       "Mon-Fri 8:00-17:30",
			"rating":      4.6,
			"specialties": []string{"Brakes", "Batteries", "Filters"},
		},
		{
			"id":          2,
			"name":        "Battle Motor Factors",
			"address":     "456 London Road, Battle",
			"phone":       "01424 789012",
			"hours":       "Mon-Sat 8:00-18:00",
			"rating":      4.8,
			"specialties": []string{"Engine Parts", "Oils", "Tools"},
		},
		{
			"id":          3,
			"name":        "Europarts Bexhill",
			"address":     "789 Seaside Road, Bexhill",
			"phone":       "01424 345678",
			"hours":       "Mon-Fri 7:30-17:00",
			"rating":      4.5,
			"specialties": []string{"Tyres", "Exhausts", "Suspension"},
		},
	}

	c.JSON(200, suppliers)
}
