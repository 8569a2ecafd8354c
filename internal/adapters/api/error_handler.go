package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	errorspkg "terraweave.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !stderrors.As(err, &appErr) {
		slog.Error("Unclassified error", "error", err, "path", c.FullPath(), "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.AuthError:
		statusCode = http.StatusUnauthorized
		message = appErr.Message
	case errorspkg.TokenError:
		statusCode = http.StatusUnauthorized
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.DatabaseError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		slog.Error("Store error", "error", err, "path", c.FullPath(), "request_id", c.GetString(requestIDKey))
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		slog.Error("Unhandled application error", "error", err, "path", c.FullPath(), "request_id", c.GetString(requestIDKey))
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleBindingError turns gin binding failures into validation errors naming the fields
func (s *HTTPServerAdapter) handleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		s.handleError(c, errorspkg.NewValidationError("invalid request body"))
		return
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fieldMessage(fe))
	}
	s.handleError(c, errorspkg.NewValidationError(strings.Join(messages, "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	default:
		return field + " is invalid"
	}
}
