package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/utils"
	pkgutils "github.com/trustkey/consent-log-api/pkg/utils"
)

// CorrelationIDHeader is echoed on every response
const CorrelationIDHeader = "X-Correlation-ID"

var correlationHeaders = []string{CorrelationIDHeader, "X-Request-ID", "X-Trace-ID"}

// CorrelationID reuses an inbound correlation id or generates one
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := extractCorrelationID(c)
		if correlationID == "" {
			correlationID = pkgutils.GenerateID()
		}
		utils.SetCorrelationID(c, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Next()
	}
}

func extractCorrelationID(c *gin.Context) string {
	for _, header := range correlationHeaders {
		if id := c.GetHeader(header); id != "" {
			return id
		}
	}
	return ""
}
