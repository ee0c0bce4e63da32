package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is where middleware.RequestID stores the id in the gin context.
const RequestIDKey = "RequestID"

// Response is the envelope used by service endpoints such as health.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorBody is the JSON error shape of the preview and export endpoints.
// The request id travels in the X-Request-ID header only.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends {"error": message}.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// Text sends a plain-text body; the job endpoints answer this way.
func Text(c *gin.Context, code int, message string) {
	c.String(code, message)
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
