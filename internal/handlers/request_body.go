package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trustkey/consent-log-api/internal/serviceerror"
)

// readBody reads the raw request body, refusing payloads above maxBytes
func readBody(c *gin.Context, maxBytes int64) ([]byte, *serviceerror.ServiceError) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serviceerror.CustomServiceError(serviceerror.InvalidRequestError,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Failed to read request body")
	}
	return body, nil
}
