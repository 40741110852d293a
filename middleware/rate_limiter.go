package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"angoni/config"
	"angoni/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware limits requests per client IP using a fixed window
// counter in Redis. The counter key expires with the window, so a burst that
// exhausts the budget recovers when the window rolls over.
func RateLimitMiddleware() gin.HandlerFunc {
	window := time.Duration(config.AppConfig.RateLimitWindowMin) * time.Minute
	max := int64(config.AppConfig.RateLimitMax)

	return func(c *gin.Context) {
		client := utils.GetRateClient()
		ip := ClientIP(c)
		key := fmt.Sprintf("ratelimit:%s", ip)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down must not take the API down with it.
			zap.L().Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > max {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
