package models

import (
	"strconv"
	"time"

	"github.com/trustkey/consent-log-api/pkg/utils"
)

// ConsentAction is the decision recorded by a consent log entry
type ConsentAction string

const (
	ConsentActionGranted ConsentAction = "GRANTED"
	ConsentActionDenied  ConsentAction = "DENIED"
	ConsentActionRevoked ConsentAction = "REVOKED"
)

// ConsentActions lists every accepted action in declaration order
var ConsentActions = []ConsentAction{
	ConsentActionGranted,
	ConsentActionDenied,
	ConsentActionRevoked,
}

// IsValid reports whether a is one of the enumerated actions (case-sensitive)
func (a ConsentAction) IsValid() bool {
	for _, candidate := range ConsentActions {
		if a == candidate {
			return true
		}
	}
	return false
}

// ConsentLog represents the consent_log table. Rows are append-only.
type ConsentLog struct {
	ID             int64         `db:"id" json:"id,string"`
	TenantID       string        `db:"tenant_id" json:"tenantId"`
	UserIdentifier string        `db:"user_identifier" json:"userIdentifier"`
	Purpose        string        `db:"purpose" json:"purpose"`
	Action         ConsentAction `db:"action" json:"action"`
	IPAddress      *string       `db:"ip_address" json:"ipAddress,omitempty"`
	UserAgent      *string       `db:"user_agent" json:"userAgent,omitempty"`
	CreatedTime    time.Time     `db:"created_time" json:"timestamp"`
}

// ConsentRequest is the statically typed body of POST /v1/consent
type ConsentRequest struct {
	UserIdentifier string  `json:"userIdentifier" validate:"required,max=255"`
	Purpose        string  `json:"purpose" validate:"required,min=3,max=1024"`
	Action         string  `json:"action" validate:"required,oneof=GRANTED DENIED REVOKED"`
	IPAddress      *string `json:"ipAddress,omitempty" validate:"omitempty,max=255"`
	UserAgent      *string `json:"userAgent,omitempty" validate:"omitempty,max=2048"`
}

// ConsentInput is a consent request that passed schema validation
type ConsentInput struct {
	UserIdentifier string
	Purpose        string
	Action         ConsentAction
	IPAddress      *string
	UserAgent      *string
}

// RequestMetadata carries transport-level values used as defaults for a consent log
type RequestMetadata struct {
	ClientIP  string
	UserAgent string
}

// ConsentRecordResponse is returned by POST /v1/consent
type ConsentRecordResponse struct {
	Success   bool   `json:"success"`
	LogID     string `json:"log_id"`
	Timestamp string `json:"timestamp"`
}

// ToRecordResponse converts a persisted log into the API response
func (l *ConsentLog) ToRecordResponse() *ConsentRecordResponse {
	return &ConsentRecordResponse{
		Success:   true,
		LogID:     strconv.FormatInt(l.ID, 10),
		Timestamp: utils.FormatTimestamp(l.CreatedTime),
	}
}
