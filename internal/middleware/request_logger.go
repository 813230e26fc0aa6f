package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssola/useragent"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/utils"
)

// RequestLogger writes one entry per request after the handler chain finishes
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         status,
			"latency":        time.Since(start).String(),
			"client_ip":      c.ClientIP(),
			"correlation_id": utils.GetCorrelationID(c),
			"bytes":          c.Writer.Size(),
		}

		if raw := c.Request.UserAgent(); raw != "" {
			ua := useragent.New(raw)
			browser, version := ua.Browser()
			fields["browser"] = browser
			fields["browser_version"] = version
			fields["os"] = ua.OS()
			fields["bot"] = ua.Bot()
		}

		if tenant, ok := utils.GetTenantFromContext(c); ok {
			fields["tenant_id"] = tenant.ID
		}

		entry := logger.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("Request completed")
		case status >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
	}
}
