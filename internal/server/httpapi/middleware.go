package httpapi

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// accessLog records method, route, status and latency. Bodies are never logged.
func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		s.metrics.RecordRequest(c.Request.Method, route, strconv.Itoa(status), latency)
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
		)
	}
}

// recoverPanic logs a recovered handler panic through the structured logger
// and answers 500. Nothing is written to gin's default error writer.
func (s *HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	s.logger.Error(c.Request.Context(), "panic recovered",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"panic", recovered,
		"stack", string(debug.Stack()),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": msgInternal})
}
