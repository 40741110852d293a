package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "ANGONI Adventure API",
		"version": "1.0.0",
		"status":  "Running",
	})
}
