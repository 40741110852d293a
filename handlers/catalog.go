package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"angoni/models"
	"angoni/services/catalog"
	"angoni/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// CatalogHandler exposes the browsable inventory endpoints.
type CatalogHandler struct {
	Service catalog.Service
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func parsePrice(c *gin.Context, key string) float64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// ListPackages handles GET /api/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	filter := models.PackageFilter{
		Type:        c.Query("type"),
		Destination: c.Query("destination"),
		MinPrice:    parsePrice(c, "min_price"),
		MaxPrice:    parsePrice(c, "max_price"),
		Featured:    c.Query("featured") == "true",
	}

	packages, err := h.Service.ListPackages(filter, requestMeta(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "packages": packages})
}

// GetPackage handles GET /api/packages/:id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Param("id"), requestMeta(c))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "package": pkg})
}

// CreatePackage handles POST /api/packages (admin).
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var pkg models.SafariPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid package payload: "+err.Error())
		return
	}
	if err := h.Service.CreatePackage(&pkg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "package": pkg})
}

// UpdatePackage handles PUT /api/packages/:id (admin).
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	pkg, err := h.Service.UpdatePackage(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "package": pkg})
}

// DeletePackage handles DELETE /api/packages/:id (admin).
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	if err := h.Service.DeletePackage(c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Package deleted successfully"})
}

// ListVehicles handles GET /api/vehicles.
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	filter := models.VehicleFilter{
		Type:     c.Query("type"),
		MinPrice: parsePrice(c, "min_price"),
		MaxPrice: parsePrice(c, "max_price"),
		Featured: c.Query("featured") == "true",
	}

	vehicles, err := h.Service.ListVehicles(filter, requestMeta(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicles": vehicles})
}

// GetVehicle handles GET /api/vehicles/:id.
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.Service.GetVehicle(c.Param("id"), requestMeta(c))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

// CreateVehicle handles POST /api/vehicles (admin).
func (h *CatalogHandler) CreateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid vehicle payload: "+err.Error())
		return
	}
	if err := h.Service.CreateVehicle(&vehicle); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

// UpdateVehicle handles PUT /api/vehicles/:id (admin).
func (h *CatalogHandler) UpdateVehicle(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	vehicle, err := h.Service.UpdateVehicle(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": vehicle})
}

// DeleteVehicle handles DELETE /api/vehicles/:id (admin).
func (h *CatalogHandler) DeleteVehicle(c *gin.Context) {
	if err := h.Service.DeleteVehicle(c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

// ListShuttles handles GET /api/shuttles.
func (h *CatalogHandler) ListShuttles(c *gin.Context) {
	shuttles, err := h.Service.ListShuttles(requestMeta(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "shuttles": shuttles})
}

// ListDestinations handles GET /api/destinations.
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.Service.ListDestinations(c.Query("featured") == "true")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "destinations": destinations})
}
