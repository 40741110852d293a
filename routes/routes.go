package routes

import (
	"time"

	"angoni/config"
	"angoni/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires global middleware and every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoutes registers the health and root endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/", handlers.RootHandler)
}
