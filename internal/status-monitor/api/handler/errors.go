package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	DefaultCheckLimit = 100
	MaxCheckLimit     = 1000
)

func abortWithError(c *gin.Context, status int, message string, details ...string) {
	c.AbortWithStatusJSON(status, response.NewErrorResponse(message, details...))
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON writes a 400 response and returns false when the body is malformed or invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			details := make([]string, 0, len(validatorError))
			for _, fieldErr := range validatorError {
				details = append(details, formatValidationError(fieldErr))
			}
			abortWithError(c, http.StatusBadRequest, "Validation failed", details...)
		} else {
			abortWithError(c, http.StatusBadRequest, "Invalid request body")
		}
		return false
	}
	return true
}

// writeServiceError maps domain errors to their status codes and logs anything unexpected.
func writeServiceError(c *gin.Context, log Logger, err error, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrServiceNotFound):
		abortWithError(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, apperrors.ErrIncidentNotFound):
		abortWithError(c, http.StatusNotFound, "Incident not found")
	case errors.Is(err, apperrors.ErrMaintenanceNotFound):
		abortWithError(c, http.StatusNotFound, "Maintenance window not found")
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		abortWithError(c, http.StatusConflict, "Invalid incident status transition", err.Error())
	case errors.Is(err, apperrors.ErrInvalidMaintenanceTime):
		abortWithError(c, http.StatusBadRequest, "Scheduled end must be after scheduled start")
	default:
		log.LoggingError(c, err, errDescription, zap.ErrorLevel)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// queryDays reads the days parameter. A missing value yields 0 so the service default applies;
// explicit values below 1 are raised to 1.
func queryDays(c *gin.Context) (int, bool) {
	raw, ok := c.GetQuery("days")
	if !ok || raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Days must be an integer")
		return 0, false
	}
	if days < 1 {
		days = 1
	}
	return days, true
}

// queryLimit reads a positive limit capped at maxLimit.
func queryLimit(c *gin.Context, defaultLimit int, maxLimit int) (int, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		abortWithError(c, http.StatusBadRequest, "Limit must be a positive integer")
		return 0, false
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, true
}
