package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/models"
)

const (
	tenantContextKey        = "tenant"
	correlationIDContextKey = "correlation_id"
)

// SetTenant stores the authenticated tenant on the request
func SetTenant(c *gin.Context, tenant *models.Tenant) {
	c.Set(tenantContextKey, tenant)
}

// GetTenantFromContext returns the tenant set by the API key gate, if any
func GetTenantFromContext(c *gin.Context) (*models.Tenant, bool) {
	value, exists := c.Get(tenantContextKey)
	if !exists {
		return nil, false
	}
	tenant, ok := value.(*models.Tenant)
	return tenant, ok && tenant != nil
}

// SetCorrelationID stores the request correlation id
func SetCorrelationID(c *gin.Context, id string) {
	c.Set(correlationIDContextKey, id)
}

// GetCorrelationID returns the request correlation id or an empty string
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(correlationIDContextKey)
}
