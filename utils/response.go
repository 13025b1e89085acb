package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// ValidationErrorResponse carries per-field messages so forms can
// re-render with inline errors.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendNotFound(c *gin.Context, what string) {
	SendError(c, http.StatusNotFound, what+" not found")
}

func SendValidationErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Code:   http.StatusBadRequest,
		Fields: fields,
	})
}
