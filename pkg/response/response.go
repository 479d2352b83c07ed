package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status code,
// anything else is reported as 400 with the error text.
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		code := ErrorCodeClient
		if he.StatusCode >= http.StatusInternalServerError {
			code = InternalServerErrorCode
		}
		c.JSON(he.StatusCode, Resp{
			ErrorCode: code,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeClient,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too Many Requests",
	})
}
