package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/metrics"
)

func Metrics(provider metrics.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the route template so cardinality stays bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		provider.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		provider.RecordHTTPRequestDuration(c.Request.Method, path, time.Since(start))
	}
}
