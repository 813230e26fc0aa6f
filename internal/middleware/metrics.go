package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/metrics"
)

// unmatchedRoute keeps label cardinality bounded for unknown paths
const unmatchedRoute = "unmatched"

// Metrics records request counts and latency labelled by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}
