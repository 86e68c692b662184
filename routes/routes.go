// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showroom-api/config"
	"showroom-api/controllers"
	"showroom-api/middleware"
	"showroom-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	catalogController := controllers.NewCatalogController(db)
	offerController := controllers.NewOfferController(db)
	leadController := controllers.NewLeadController(db, cfg, emailService)
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	adminController := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Public catalog reads. bikes.json is a stable public contract
	// consumed directly by the front end.
	api := r.Group("/api")
	{
		api.GET("/bikes.json", catalogController.GetBikesJSON)
		api.GET("/bikes/:slug", catalogController.GetBike)
		api.GET("/bike-choices", catalogController.GetBikeChoices)
		api.GET("/offers", offerController.GetActiveOffers)
	}

	// Lead-capture forms. POST validates and persists; anything else
	// bounces back to the form page with no side effect.
	forms := r.Group("/forms")
	forms.Use(middleware.RateLimit(30, 10))
	{
		forms.POST("/test-ride", leadController.SubmitTestRide)
		forms.GET("/test-ride", leadController.BookingPageRedirect)
		forms.POST("/contact", leadController.SubmitContact)
		forms.GET("/contact", leadController.ContactPageRedirect)
		forms.POST("/service", leadController.SubmitService)
		forms.GET("/service", leadController.ServicePageRedirect)
	}

	// Admin console API
	r.POST("/api/admin/login", authController.Login)

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		bikes := admin.Group("/bikes")
		{
			bikes.GET("/", adminController.GetBikes)
			bikes.POST("/", adminController.CreateBike)
			bikes.GET("/:id", adminController.GetBikeByID)
			bikes.PUT("/:id", adminController.UpdateBike)
			bikes.DELETE("/:id", adminController.DeleteBike)
		}

		offers := admin.Group("/offers")
		{
			offers.GET("/", adminController.GetOffers)
			offers.POST("/", adminController.CreateOffer)
			offers.PUT("/:id", adminController.UpdateOffer)
			offers.DELETE("/:id", adminController.DeleteOffer)
		}

		// Lead listings are read-only
		leads := admin.Group("/leads")
		{
			leads.GET("/test-rides", adminController.GetTestRideRequests)
			leads.GET("/inquiries", adminController.GetContactInquiries)
			leads.GET("/service-bookings", adminController.GetServiceBookings)
		}
	}
}
