package middleware

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/internal/utils"
)

// Recovery turns panics into a 500 JSON body and logs them through logrus
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"panic":          recovered,
			"path":           c.Request.URL.Path,
			"correlation_id": utils.GetCorrelationID(c),
		}).Error("Panic recovered")
		utils.AbortWithServiceError(c, serviceerror.New(serviceerror.InternalServerError))
	})
}
