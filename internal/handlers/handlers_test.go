package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(context.Context) error {
	return s.err
}

func TestHealthHandler_Status(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := NewHealthHandler(stubChecker{}, "1.2.0", logger)

	r := gin.New()
	r.GET("/", h.Status)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"TrustKey API is Online","version":"1.2.0"}`, rec.Body.String())
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"Healthy", nil, http.StatusOK, `{"status":"healthy"}`},
		{"Database down", errors.New("database ping failed"), http.StatusServiceUnavailable, `{"status":"unhealthy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			h := NewHealthHandler(stubChecker{err: tt.err}, "dev", logger)

			r := gin.New()
			r.GET("/health", h.Health)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReadBody(t *testing.T) {
	newContext := func(body string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return c
	}

	body, err := readBody(newContext(`{"a":1}`), 64)
	require.Nil(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	_, err = readBody(newContext(strings.Repeat("x", 65)), 64)
	require.NotNil(t, err)
	assert.Equal(t, serviceerror.InvalidRequestError.Code, err.Code)
	assert.Equal(t, "Request body exceeds 64 bytes", err.ErrorDescription)
}
