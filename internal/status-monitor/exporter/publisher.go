package exporter

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"errors"
	"fmt"
	"time"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/exporter/publisher_mock.go -package=mockexporter

// Publisher receives every check result once it has been stored.
type Publisher interface {
	Publish(ctx context.Context, service model.Service, result model.CheckResult) error
	Close() error
}

// CheckResultEvent is the JSON document shipped to Kafka and Elasticsearch.
type CheckResultEvent struct {
	ServiceID      string       `json:"serviceId"`
	ServiceName    string       `json:"serviceName"`
	Category       string       `json:"category"`
	Status         model.Status `json:"status"`
	ResponseTimeMs *int64       `json:"responseTimeMs"`
	StatusCode     *int         `json:"statusCode"`
	ErrorMessage   *string      `json:"errorMessage,omitempty"`
	CheckedAt      time.Time    `json:"checkedAt"`
}

func newCheckResultEvent(service model.Service, result model.CheckResult) CheckResultEvent {
	return CheckResultEvent{
		ServiceID:      result.ServiceID,
		ServiceName:    service.Name,
		Category:       service.Category,
		Status:         result.Status,
		ResponseTimeMs: result.ResponseTimeMs,
		StatusCode:     result.StatusCode,
		ErrorMessage:   result.ErrorMessage,
		CheckedAt:      result.CheckedAt.UTC(),
	}
}

type multiPublisher struct {
	publishers []Publisher
}

func (m *multiPublisher) Publish(ctx context.Context, service model.Service, result model.CheckResult) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, service, result); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("multiPublisher.Publish: %w", err)
	}
	return nil
}

func (m *multiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewMultiPublisher fans a result out to every publisher. With no publishers it is a no-op.
func NewMultiPublisher(publishers ...Publisher) Publisher {
	return &multiPublisher{publishers: publishers}
}
