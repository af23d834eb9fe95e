package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sokohub/handlers"
)

// RegisterCatalogRoutes registers catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/featured", hb.Catalog.GetFeaturedServices)
		api.GET("/services/:id", hb.Catalog.GetServiceByID)
		api.GET("/services/:id/reviews", hb.Catalog.GetServiceReviews)
		api.GET("/services/:id/staff", hb.Catalog.GetServiceStaff)
		api.GET("/categories", hb.Catalog.ListCategories)
		api.GET("/categories/:id/services", hb.Catalog.GetCategoryServices)
		api.GET("/providers", hb.Catalog.ListProviders)
		api.GET("/providers/:id", hb.Catalog.GetProviderByID)
		api.DELETE("/filters", hb.Catalog.ResetFilters)
	}
}

// RegisterCartRoutes registers cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.Cart.GetCart)
		api.DELETE("", hb.Cart.ClearCart)
		api.POST("/items", hb.Cart.AddItem)
		api.PATCH("/items/:serviceId", hb.Cart.UpdateItem)
		api.DELETE("/items/:serviceId", hb.Cart.RemoveItem)
	}
}

// RegisterFavoritesRoutes registers favorites endpoints.
func RegisterFavoritesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.GET("", hb.Favorites.ListFavorites)
		api.GET("/:serviceId", hb.Favorites.CheckFavorite)
		api.POST("/:serviceId/toggle", hb.Favorites.ToggleFavorite)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookings)
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.POST("/:id/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterRegistrationRoutes registers the merchant registration wizard endpoints.
func RegisterRegistrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/registration/sessions")
	{
		api.POST("", hb.Registration.StartSession)
		api.GET("/:sessionId", hb.Registration.GetSession)
		api.PUT("/:sessionId/step1", hb.Registration.UpdateStep1)
		api.PUT("/:sessionId/step2", hb.Registration.UpdateStep2)
		api.POST("/:sessionId/verify-phone", hb.Registration.VerifyPhone)
		api.PUT("/:sessionId/password", hb.Registration.UpdatePassword)
		api.PUT("/:sessionId/business", hb.Registration.UpdateStep5)
		api.PUT("/:sessionId/documents", hb.Registration.UpdateStep6)
		api.PUT("/:sessionId/signature", hb.Registration.UpdateSignature)
		api.POST("/:sessionId/submit", hb.Registration.SubmitSession)
		api.DELETE("/:sessionId", hb.Registration.ResetSession)
	}
}

// RegisterRoutes sets up CORS, the health endpoint and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterFavoritesRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRegistrationRoutes(r, hb)
}
