package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/service"
	"github.com/trustkey/consent-log-api/internal/utils"
	"github.com/trustkey/consent-log-api/internal/validator"
)

// TenantHandler handles tenant registration
type TenantHandler struct {
	tenantService *service.TenantService
	maxBodyBytes  int64
}

// NewTenantHandler creates a new tenant handler instance
func NewTenantHandler(tenantService *service.TenantService, maxBodyBytes int64) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		maxBodyBytes:  maxBodyBytes,
	}
}

// Register handles POST /register
func (h *TenantHandler) Register(c *gin.Context) {
	body, serviceErr := readBody(c, h.maxBodyBytes)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	req, serviceErr := validator.ParseRegisterRequest(body)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	resp, serviceErr := h.tenantService.RegisterTenant(c.Request.Context(), req)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	utils.SendOKResponse(c, resp)
}
