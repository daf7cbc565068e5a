package helpers

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns. The frontend depends on this
// exact shape, including mirroring the HTTP status in status_code.
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func SuccessRes(c *gin.Context, statusCode int, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(statusCode, Response{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func ErrorRes(c *gin.Context, statusCode int, message string, errors interface{}) {
	if errors == nil {
		errors = gin.H{}
	}
	c.JSON(statusCode, Response{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Errors:     errors,
	})
}
