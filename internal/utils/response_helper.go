package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

// StatusCodeFor maps a service error to its HTTP status
func StatusCodeFor(err *serviceerror.ServiceError) int {
	switch err.Code {
	case serviceerror.UnauthorizedError.Code:
		return http.StatusUnauthorized
	case serviceerror.ForbiddenError.Code:
		return http.StatusForbidden
	case serviceerror.NotFoundError.Code:
		return http.StatusNotFound
	case serviceerror.ValidationError.Code, serviceerror.InvalidRequestError.Code:
		return http.StatusBadRequest
	}

	if err.Type == serviceerror.ClientErrorType {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// SendServiceError writes err as a JSON error body with its mapped status
func SendServiceError(c *gin.Context, err *serviceerror.ServiceError) {
	c.JSON(StatusCodeFor(err), models.NewErrorResponse(err))
}

// AbortWithServiceError writes err and stops the handler chain
func AbortWithServiceError(c *gin.Context, err *serviceerror.ServiceError) {
	c.AbortWithStatusJSON(StatusCodeFor(err), models.NewErrorResponse(err))
}

// SendOKResponse sends a 200 OK response
func SendOKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendSuccessResponse sends a successful JSON response
func SendSuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
