package routes

import (
	"angoni/handlers"
	"angoni/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.RateLimitMiddleware())
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:reference", hb.Booking.GetBookingByReference)

		// Admin-only booking management.
		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.GET("", hb.Booking.ListBookings)
		protected.PUT("/:id", hb.Booking.UpdateBooking)
	}
}
