package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"housemate/handlers"
	"housemate/middleware"
	"housemate/models"
)

// RegisterAuthRoutes registers registration, login and account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register/customer", hb.Auth.RegisterCustomerHandler)
		api.POST("/register/expert", hb.Auth.RegisterExpertHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/logout", hb.Auth.LogoutHandler)
		protected.GET("/me", hb.Auth.MeHandler)
		protected.PUT("/fcm-token", hb.Auth.UpdateFCMTokenHandler)
	}
}

// RegisterCatalogRoutes registers the public reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", hb.Catalog.ListCategoriesHandler)
		api.GET("/zones", hb.Catalog.ListZonesHandler)
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceHandler)
		api.GET("/coupons", hb.Catalog.ListCouponsHandler)
	}
}

// RegisterDraftRoutes registers the booking draft flow.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drafts")
	api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleCustomer))
	{
		api.POST("", hb.Draft.StartDraftHandler)
		api.GET("/:sessionID", hb.Draft.GetDraftHandler)
		api.PATCH("/:sessionID", hb.Draft.UpdateDraftHandler)
		api.POST("/:sessionID/confirm", hb.Draft.ConfirmDraftHandler)
		api.DELETE("/:sessionID", hb.Draft.CancelDraftHandler)
	}
}

// RegisterBookingRoutes registers the customer-side booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleCustomer))
	{
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/pay", hb.Booking.PayHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/regenerate-otp", hb.Booking.RegenerateOTPHandler)
		api.PATCH("/:id", hb.Booking.ModifyBookingHandler)
	}
}

// RegisterExpertRoutes registers the expert-side endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		// Public expert card and reviews.
		api.GET("/:id", hb.Expert.GetExpertHandler)
		api.GET("/:id/ratings", hb.Rating.ListExpertRatingsHandler)

		me := api.Group("/me")
		me.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleExpert))
		me.GET("", hb.Expert.GetMyProfileHandler)
		me.PATCH("", hb.Expert.UpdateProfileHandler)
		me.PUT("/online-status", hb.Expert.SetOnlineStatusHandler)
		me.GET("/availability", hb.Expert.GetAvailabilityHandler)
		me.PUT("/availability", hb.Expert.SetAvailabilityHandler)
		me.GET("/stats", hb.Expert.StatsHandler)
		me.POST("/id-proof", hb.Expert.UploadIDProofHandler)
		me.GET("/bookings", hb.Booking.ListExpertBookingsHandler)
		me.POST("/bookings/:id/accept", hb.Booking.AcceptBookingHandler)
		me.POST("/bookings/:id/reject", hb.Booking.RejectBookingHandler)
		me.POST("/bookings/:id/start", hb.Booking.StartJobHandler)
		me.POST("/bookings/:id/complete", hb.Booking.CompleteJobHandler)
	}
}

// RegisterAddressRoutes registers the customer's saved addresses.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleCustomer))
	{
		api.GET("", hb.Address.ListAddressesHandler)
		api.POST("", hb.Address.CreateAddressHandler)
		api.PATCH("/:id", hb.Address.UpdateAddressHandler)
		api.DELETE("/:id", hb.Address.DeleteAddressHandler)
	}
}

// RegisterRatingRoutes registers review endpoints.
func RegisterRatingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ratings")
	api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleCustomer))
	{
		api.POST("", hb.Rating.CreateRatingHandler)
	}
}

// RegisterAdminRoutes registers the expert approval workflow and user
// management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/experts/pending", hb.Expert.ListPendingExpertsHandler)
		api.POST("/experts/:id/approve", hb.Expert.ApproveExpertHandler)
		api.POST("/experts/:id/reject", hb.Expert.RejectExpertHandler)
		api.GET("/users", hb.Auth.ListUsersHandler)
		api.POST("/users/:id/block", hb.Auth.BlockUserHandler)
		api.POST("/users/:id/unblock", hb.Auth.UnblockUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and
// cross-cutting middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterExpertRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterRatingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
