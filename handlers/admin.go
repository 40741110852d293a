package handlers

import (
	"net/http"
	"strconv"

	"angoni/services/admin"
	"angoni/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin aggregate endpoints.
type AdminHandler struct {
	Service admin.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetStats handles GET /api/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.DashboardStats()
	if err != nil {
		zap.L().Error("Failed to compute dashboard stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetAnalytics handles GET /api/admin/analytics.
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	events, err := h.Service.Analytics(c.Query("event_type"), days)
	if err != nil {
		zap.L().Error("Failed to fetch analytics", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": events})
}
