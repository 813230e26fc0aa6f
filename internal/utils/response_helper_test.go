package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      *serviceerror.ServiceError
		expected int
	}{
		{"Unauthorized", serviceerror.New(serviceerror.UnauthorizedError), http.StatusUnauthorized},
		{"Forbidden", serviceerror.New(serviceerror.ForbiddenError), http.StatusForbidden},
		{"Validation", serviceerror.ValidationFailure(nil), http.StatusBadRequest},
		{"Not found", serviceerror.New(serviceerror.NotFoundError), http.StatusNotFound},
		{"Invalid request", serviceerror.New(serviceerror.InvalidRequestError), http.StatusBadRequest},
		{"Storage", serviceerror.New(serviceerror.StorageError), http.StatusInternalServerError},
		{"Storage with custom message", serviceerror.CustomMessageError(serviceerror.StorageError, "Registration failed"), http.StatusInternalServerError},
		{"Internal", serviceerror.New(serviceerror.InternalServerError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCodeFor(tt.err))
		})
	}
}

func TestSendServiceError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SendServiceError(c, serviceerror.ValidationFailure([]serviceerror.FieldError{
		{Field: "purpose", Message: "must be at least 3 characters"},
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CSE-4001", body.Code)
	assert.Equal(t, "Validation Failed", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "purpose", body.Details[0].Field)
}

func TestAbortWithServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	AbortWithServiceError(c, serviceerror.New(serviceerror.UnauthorizedError))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"code":"CSE-4010","error":"Missing API Key","error_description":"The x-api-key header is required"}`, rec.Body.String())
}
