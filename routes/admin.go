package routes

import (
	"angoni/handlers"
	"angoni/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the admin aggregate endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.RateLimitMiddleware())
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/stats", hb.Admin.GetStats)
		api.GET("/analytics", hb.Admin.GetAnalytics)
	}
}
