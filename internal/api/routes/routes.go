package routes

import (
	"github.com/Mo2025mo/la-automotive/internal/api/handlers"
	"github.com/Mo2025mo/la-automotive/internal/api/middleware"
	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"
	"github.com/Mo2025mo/la-automotive/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) error {
	// Initialize services
	activityService := services.NewActivityService(cfg)
	authService, err := services.NewAuthService(cfg, activityService)
	if err != nil {
		return err
	}
	notifier := services.NewNotifier(cfg)
	inquiryService := services.NewInquiryService(cfg, notifier)
	recoveryService := services.NewRecoveryService(cfg, activityService)
	vehicleService := services.NewVehicleService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	activityHandler := handlers.NewActivityHandler(activityService)
	recoveryHandler := handlers.NewRecoveryHandler(recoveryService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, activityService, vehicleService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, cfg)
	dashboardHandler := handlers.NewDashboardHandler(inquiryService, activityService)

	// Middleware
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ErrorHandler())

	// Public routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "LA Automotive API is running",
			})
		})

		// Customer-facing forms
		api.POST("/contact", inquiryHandler.SubmitContact)
		api.POST("/service-request", inquiryHandler.SubmitServiceRequest)
		api.POST("/price-match", inquiryHandler.SubmitPriceMatch)

		// Vehicle lookup and search tracking
		api.POST("/vehicle-lookup", vehicleHandler.Lookup)
		api.POST("/track-search", vehicleHandler.TrackSearch)
		api.GET("/suppliers", vehicleHandler.GetSuppliers)

		// Admin login and recovery (public: they exist for admins who are
		// locked out)
		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)
			admin.POST("/password-recovery/question", recoveryHandler.GetQuestion)
			admin.POST("/password-recovery", recoveryHandler.Recover)
		}
	}

	// Protected admin routes
	protected := api.Group("/admin")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.GetMe)
		protected.GET("/dashboard", dashboardHandler.GetSummary)

		// Inquiry triage
		protected.GET("/inquiries", inquiryHandler.GetInquiries)
		protected.PATCH("/inquiries/:id/read", inquiryHandler.MarkRead)
		protected.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)

		// Owner-only surfaces
		owner := protected.Group("")
		owner.Use(middleware.RequireRole(models.RoleOwner))
		{
			owner.GET("/activities", activityHandler.GetActivities)
			owner.GET("/login-stats", activityHandler.GetLoginStats)
			owner.GET("/security/:username", activityHandler.CheckSuspicious)
			owner.GET("/accounts", authHandler.GetAccounts)
			owner.GET("/searches", vehicleHandler.GetSearchAnalytics)
		}
	}

	return nil
}
