package config

import (
	"time"

	"github.com/gin-gonic/gin"

	"swiftinvoice-backend/utils"
)

// PerformanceLogger logs every request with its latency and flags slow ones.
// PDF downloads are the usual offenders (logo fetch + render).
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		utils.Log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency.String(),
		)

		if latency > 500*time.Millisecond {
			utils.Log.Warnw("slow request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"latency", latency.String(),
			)
		}
	}
}
