package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Handle maps a use-case error onto the HTTP contract: invalid input and
// conflicts are 400, missing records 404, anything else 500 with the
// underlying message.
func Handle(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindNotFound:
			NotFound(c, be.Code, be.Message)
		default:
			BadRequest(c, be.Code, be.Message)
		}
		return
	}
	Internal(c, "internal_error", err.Error())
}
