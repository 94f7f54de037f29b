package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// Success writes data as the bare JSON response body.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, message string, field string) {
	c.JSON(status, ErrorBody{
		Error: message,
		Code:  errorCode,
		Field: field,
	})
}

// Abort writes an error body and stops the handler chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error: message,
		Code:  errorCode,
	})
}
