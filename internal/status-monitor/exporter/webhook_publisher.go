package exporter

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type statusChangeEvent struct {
	ServiceID      string       `json:"serviceId"`
	ServiceName    string       `json:"serviceName"`
	PreviousStatus model.Status `json:"previousStatus"`
	Status         model.Status `json:"status"`
	ErrorMessage   *string      `json:"errorMessage,omitempty"`
	CheckedAt      time.Time    `json:"checkedAt"`
}

type webhookPublisher struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter

	mu         sync.Mutex
	lastStatus map[string]model.Status
}

// Publish posts a status change notification. The first result seen for a service only
// records its status. A change is recorded only after delivery; throttled or failed
// changes are sent again on the next result.
func (w *webhookPublisher) Publish(ctx context.Context, service model.Service, result model.CheckResult) error {
	w.mu.Lock()
	previous, seen := w.lastStatus[result.ServiceID]
	if !seen {
		w.lastStatus[result.ServiceID] = result.Status
	}
	w.mu.Unlock()
	if !seen || previous == result.Status {
		return nil
	}
	if !w.limiter.Allow() {
		return fmt.Errorf("webhookPublisher.Publish: %w", apperrors.ErrWebhookRateLimited)
	}

	b, err := json.Marshal(statusChangeEvent{
		ServiceID:      result.ServiceID,
		ServiceName:    service.Name,
		PreviousStatus: previous,
		Status:         result.Status,
		ErrorMessage:   result.ErrorMessage,
		CheckedAt:      result.CheckedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("webhookPublisher.Publish: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("webhookPublisher.Publish creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhookPublisher.Publish: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhookPublisher.Publish: unexpected status code %d", resp.StatusCode)
	}

	w.mu.Lock()
	w.lastStatus[result.ServiceID] = result.Status
	w.mu.Unlock()
	return nil
}

func (w *webhookPublisher) Close() error {
	w.client.CloseIdleConnections()
	return nil
}

// NewWebhookPublisher allows ratePerMinute notifications per minute with the given burst.
func NewWebhookPublisher(url string, timeout time.Duration, ratePerMinute int, burst int) Publisher {
	return &webhookPublisher{
		url:        url,
		client:     &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60), burst),
		lastStatus: make(map[string]model.Status),
	}
}
