package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound         = errors.New("service not found")
	ErrServiceNotProbeable     = errors.New("service has no probe url")
	ErrIncidentNotFound        = errors.New("incident not found")
	ErrInvalidStatusTransition = errors.New("invalid incident status transition")
	ErrMaintenanceNotFound     = errors.New("maintenance window not found")
	ErrInvalidMaintenanceTime  = errors.New("maintenance window must end after it starts")
	ErrWebhookRateLimited      = errors.New("webhook rate limited")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
