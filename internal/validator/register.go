package validator

import (
	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/pkg/utils"
)

var registerFieldOrder = []string{"name", "website"}

// ParseRegisterRequest validates a raw POST /register body
func ParseRegisterRequest(body []byte) (*models.RegisterRequest, *serviceerror.ServiceError) {
	p, serviceErr := decodeObject(body)
	if serviceErr != nil {
		return nil, serviceErr
	}

	typeErrors := make(map[string]string)
	req := models.RegisterRequest{}
	if s := p.stringField("name", typeErrors); s != nil {
		req.Name = utils.SanitizeString(*s)
	}
	if s := p.stringField("website", typeErrors); s != nil {
		req.Website = utils.SanitizeString(*s)
	}

	if details := collectErrors(req, registerFieldOrder, typeErrors); len(details) > 0 {
		return nil, serviceerror.ValidationFailure(details)
	}
	return &req, nil
}
