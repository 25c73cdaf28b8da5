package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"status-service/internal/service"
)

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// clientLangHeader carries the client's preferred language, which may
// differ from any account-level language setting.
const clientLangHeader = "X-Requested-Client-Lang"

// clientLang returns the client-preferred language, "" when unset.
func clientLang(c *gin.Context) string {
	return c.GetHeader(clientLangHeader)
}

// writeServiceError maps service errors onto distinct response codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, service.ErrInvalidStatusType):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_STATUS_TYPE", Message: err.Error()},
		})
	case errors.Is(err, service.ErrInvalidMessageID):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_MESSAGE_ID", Message: err.Error()},
		})
	case errors.Is(err, service.ErrInvalidClearAt):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_CLEAR_AT", Message: err.Error()},
		})
	case errors.Is(err, service.ErrInvalidStatusIcon):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_STATUS_ICON", Message: err.Error()},
		})
	case errors.Is(err, service.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "MESSAGE_TOO_LONG", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "INTERNAL_ERROR", Message: "Internal server error"},
		})
	}
}
