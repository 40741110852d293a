package routes

import (
	"angoni/handlers"
	"angoni/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers package, vehicle, shuttle and destination
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	packages := r.Group("/api/packages")
	packages.Use(middleware.RateLimitMiddleware())
	{
		packages.GET("", hb.Catalog.ListPackages)
		packages.GET("/:id", hb.Catalog.GetPackage)

		protected := packages.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.Catalog.CreatePackage)
		protected.PUT("/:id", hb.Catalog.UpdatePackage)
		protected.DELETE("/:id", hb.Catalog.DeletePackage)
	}

	vehicles := r.Group("/api/vehicles")
	vehicles.Use(middleware.RateLimitMiddleware())
	{
		vehicles.GET("", hb.Catalog.ListVehicles)
		vehicles.GET("/:id", hb.Catalog.GetVehicle)

		protected := vehicles.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.Catalog.CreateVehicle)
		protected.PUT("/:id", hb.Catalog.UpdateVehicle)
		protected.DELETE("/:id", hb.Catalog.DeleteVehicle)
	}

	r.GET("/api/shuttles", middleware.RateLimitMiddleware(), hb.Catalog.ListShuttles)
	r.GET("/api/destinations", middleware.RateLimitMiddleware(), hb.Catalog.ListDestinations)
}
