package server

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey is the gin context key holding the request id.
const requestIDKey = "RequestID"

// Response standardizes the API JSON response.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

func fail(c *gin.Context, code int, message, detail string) {
	c.AbortWithStatusJSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: c.GetString(requestIDKey),
	})
}
