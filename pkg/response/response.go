package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "delivery-agent/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Raw sends 200 JSON with data as the whole body, no envelope.
func Raw(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. The status comes from a pkg/errors.HTTPError,
// anything else is reported as 400 with the error text.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	if code := pkgErrors.StatusCode(err); code != http.StatusInternalServerError {
		status = code
	}

	c.JSON(status, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 without exposing err to the caller.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   TooManyRequestsMessage,
	})
}

// RawError sends err as a flat ErrorBody. The status comes from a
// pkg/errors.HTTPError; anything else is a 500 without detail.
func RawError(c *gin.Context, err error) {
	status := pkgErrors.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = DefaultErrorMessage
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}
