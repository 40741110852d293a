package routes

import (
	"angoni/handlers"
	"angoni/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInquiryRoutes registers trip planning, contact and newsletter
// endpoints.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	planTrip := r.Group("/api/plan-trip")
	planTrip.Use(middleware.RateLimitMiddleware())
	{
		planTrip.POST("", hb.Inquiry.PlanTrip)
		planTrip.GET("", middleware.AdminAuthMiddleware(), hb.Inquiry.ListTripRequests)
	}

	r.POST("/api/newsletter/subscribe", middleware.RateLimitMiddleware(), hb.Inquiry.Subscribe)
	r.POST("/api/contact", middleware.RateLimitMiddleware(), hb.Inquiry.Contact)
}
