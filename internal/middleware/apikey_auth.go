package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/internal/utils"
)

// Authenticator resolves an API key to its tenant
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey string) (*models.Tenant, *serviceerror.ServiceError)
}

// APIKeyAuth rejects requests without a valid key in header and
// stores the resolved tenant on the context
func APIKeyAuth(header string, auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, serviceErr := auth.Authenticate(c.Request.Context(), c.GetHeader(header))
		if serviceErr != nil {
			utils.AbortWithServiceError(c, serviceErr)
			return
		}

		utils.SetTenant(c, tenant)
		c.Next()
	}
}
