package exporter

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type webhookRecorder struct {
	mu     sync.Mutex
	events []statusChangeEvent
	status int
}

func (w *webhookRecorder) handler(t *testing.T) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var event statusChangeEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		w.mu.Lock()
		w.events = append(w.events, event)
		status := w.status
		w.mu.Unlock()
		rw.WriteHeader(status)
	}
}

func (w *webhookRecorder) setStatus(status int) {
	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}

func resultWithStatus(status model.Status) model.CheckResult {
	r := testResult
	r.Status = status
	return r
}

func TestWebhookPublisher_Publish(t *testing.T) {
	t.Run("Success only status changes are posted", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusNoContent}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 60, 10)
		ctx := context.Background()

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))

		require.Len(t, rec.events, 2)
		assert.Equal(t, model.StatusOperational, rec.events[0].PreviousStatus)
		assert.Equal(t, model.StatusMajorOutage, rec.events[0].Status)
		assert.Equal(t, "api", rec.events[0].ServiceID)
		assert.Equal(t, "API", rec.events[0].ServiceName)
		assert.Equal(t, model.StatusMajorOutage, rec.events[1].PreviousStatus)
		assert.Equal(t, model.StatusOperational, rec.events[1].Status)
	})

	t.Run("Success services are tracked independently", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusOK}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 60, 10)
		ctx := context.Background()

		other := resultWithStatus(model.StatusMajorOutage)
		other.ServiceID = "web"
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		require.NoError(t, p.Publish(ctx, model.Service{ID: "web"}, other))
		assert.Empty(t, rec.events)
	})

	t.Run("Failure rate limited", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusOK}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 1, 1)
		ctx := context.Background()

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusDegraded)))
		err := p.Publish(ctx, testService, resultWithStatus(model.StatusOperational))
		assert.ErrorIs(t, err, apperrors.ErrWebhookRateLimited)
		assert.Len(t, rec.events, 1)
	})

	t.Run("Failure receiver returns error status", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusInternalServerError}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 60, 10)
		ctx := context.Background()

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		err := p.Publish(ctx, testService, resultWithStatus(model.StatusDegraded))
		assert.ErrorContains(t, err, "unexpected status code 500")
	})

	t.Run("Success throttled change is sent once the limiter refills", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusOK}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 60, 1)
		ctx := context.Background()

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusDegraded)))
		err := p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage))
		require.ErrorIs(t, err, apperrors.ErrWebhookRateLimited)
		require.Len(t, rec.events, 1)

		time.Sleep(1100 * time.Millisecond)
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))
		require.Len(t, rec.events, 2)
		assert.Equal(t, model.StatusDegraded, rec.events[1].PreviousStatus)
		assert.Equal(t, model.StatusMajorOutage, rec.events[1].Status)

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))
		assert.Len(t, rec.events, 2)
	})

	t.Run("Success failed delivery is retried on the next result", func(t *testing.T) {
		rec := &webhookRecorder{status: http.StatusBadGateway}
		server := httptest.NewServer(rec.handler(t))
		defer server.Close()
		p := NewWebhookPublisher(server.URL, time.Second, 60, 10)
		ctx := context.Background()

		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusOperational)))
		assert.Error(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))

		rec.setStatus(http.StatusOK)
		require.NoError(t, p.Publish(ctx, testService, resultWithStatus(model.StatusMajorOutage)))
		require.Len(t, rec.events, 2)
		assert.Equal(t, model.StatusOperational, rec.events[1].PreviousStatus)
		assert.Equal(t, model.StatusMajorOutage, rec.events[1].Status)
	})
}
