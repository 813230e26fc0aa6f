package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/service"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/internal/utils"
	"github.com/trustkey/consent-log-api/internal/validator"
)

// ConsentLogHandler handles consent recording
type ConsentLogHandler struct {
	consentLogService *service.ConsentLogService
	maxBodyBytes      int64
}

// NewConsentLogHandler creates a new consent log handler instance
func NewConsentLogHandler(consentLogService *service.ConsentLogService, maxBodyBytes int64) *ConsentLogHandler {
	return &ConsentLogHandler{
		consentLogService: consentLogService,
		maxBodyBytes:      maxBodyBytes,
	}
}

// RecordConsent handles POST /v1/consent. The API key gate runs first.
func (h *ConsentLogHandler) RecordConsent(c *gin.Context) {
	tenant, ok := utils.GetTenantFromContext(c)
	if !ok {
		utils.SendServiceError(c, serviceerror.New(serviceerror.UnauthorizedError))
		return
	}

	body, serviceErr := readBody(c, h.maxBodyBytes)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	input, serviceErr := validator.ParseConsentRequest(body)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	meta := models.RequestMetadata{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	log, serviceErr := h.consentLogService.RecordConsent(c.Request.Context(), tenant, input, meta)
	if serviceErr != nil {
		utils.SendServiceError(c, serviceErr)
		return
	}

	utils.SendOKResponse(c, log.ToRecordResponse())
}
