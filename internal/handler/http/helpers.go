package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps a typed domain error to an HTTP response. Untyped errors
// fall through to 500.
func RespondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindDuplicateKey, apperror.KindInvalidReference, apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindStore:
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.ErrorResponse{Error: appErr.Error(), Field: appErr.Field})
}

// statusFilter parses an optional lifecycle status query parameter. An
// unknown value is ignored rather than rejected.
func statusFilter(c *gin.Context) *entity.Status {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	s := entity.Status(raw)
	if !s.Valid() {
		return nil
	}
	return &s
}
