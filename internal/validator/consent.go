package validator

import (
	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

var consentFieldOrder = []string{"userIdentifier", "purpose", "action", "ipAddress", "userAgent"}

// ParseConsentRequest validates a raw POST /v1/consent body.
// Every failing field is reported. Missing ipAddress/userAgent stay nil.
func ParseConsentRequest(body []byte) (*models.ConsentInput, *serviceerror.ServiceError) {
	p, serviceErr := decodeObject(body)
	if serviceErr != nil {
		return nil, serviceErr
	}

	typeErrors := make(map[string]string)
	req := models.ConsentRequest{
		IPAddress: p.stringField("ipAddress", typeErrors),
		UserAgent: p.stringField("userAgent", typeErrors),
	}
	if s := p.stringField("userIdentifier", typeErrors); s != nil {
		req.UserIdentifier = *s
	}
	if s := p.stringField("purpose", typeErrors); s != nil {
		req.Purpose = *s
	}
	if s := p.stringField("action", typeErrors); s != nil {
		req.Action = *s
	}

	if details := collectErrors(req, consentFieldOrder, typeErrors); len(details) > 0 {
		return nil, serviceerror.ValidationFailure(details)
	}

	return &models.ConsentInput{
		UserIdentifier: req.UserIdentifier,
		Purpose:        req.Purpose,
		Action:         models.ConsentAction(req.Action),
		IPAddress:      req.IPAddress,
		UserAgent:      req.UserAgent,
	}, nil
}
