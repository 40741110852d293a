package handlers

import (
	"angoni/middleware"
	"angoni/models"

	"github.com/gin-gonic/gin"
)

// requestMeta extracts provenance fields from the inbound request. Missing
// headers default to empty strings.
func requestMeta(c *gin.Context) models.RequestMeta {
	return models.RequestMeta{
		PageURL:   c.GetHeader("Referer"),
		UserIP:    middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		SessionID: c.GetHeader("X-Session-Id"),
	}
}
