package checker

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/exporter"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SlowResponseThreshold marks a successful response as degraded when exceeded.
const SlowResponseThreshold = 2000 * time.Millisecond

//go:generate mockgen -source=checker.go -destination=../mocks/checker/checker_mock.go -package=mockchecker

type Checker interface {
	Check(ctx context.Context, service model.Service) (model.CheckResult, error)
}

type checker struct {
	client         ServiceClient
	resultRepo     repository.CheckResultRepository
	publisher      exporter.Publisher
	defaultTimeout time.Duration
	now            func() time.Time
	logger         *zap.Logger
}

// Check probes the service once and stores exactly one result, even when the probe fails.
// Only store failures are returned.
func (c *checker) Check(ctx context.Context, service model.Service) (model.CheckResult, error) {
	if !service.Probeable() {
		return model.CheckResult{}, fmt.Errorf("Checker.Check: %w", apperrors.ErrServiceNotProbeable)
	}
	timeout := c.defaultTimeout
	if service.TimeoutMs > 0 {
		timeout = service.Timeout()
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	res, err := c.client.Probe(probeCtx, *service.URL)
	cancel()
	if err != nil {
		res = ProbeResponse{Error: err}
	}

	result := ClassifyProbe(res)
	result.ServiceID = service.ID
	result.CheckedAt = c.now()

	checksTotal.WithLabelValues(service.ID, string(result.Status)).Inc()
	checkDuration.WithLabelValues(service.ID).Observe(res.Elapsed.Seconds())

	if err = c.resultRepo.CreateCheckResult(ctx, &result); err != nil {
		return result, fmt.Errorf("Checker.Check: %w", err)
	}
	if err = c.publisher.Publish(ctx, service, result); err != nil {
		level := zap.ErrorLevel
		if errors.Is(err, apperrors.ErrWebhookRateLimited) {
			level = zap.WarnLevel
		}
		c.logger.Log(level, "failed to export check result", zap.String("service_id", service.ID), zap.Error(err))
	}
	return result, nil
}

// ClassifyProbe maps a probe outcome to a check result without service id or timestamp.
func ClassifyProbe(res ProbeResponse) model.CheckResult {
	elapsedMs := res.Elapsed.Milliseconds()
	result := model.CheckResult{
		ResponseTimeMs: &elapsedMs,
	}
	if res.Error != nil {
		msg := probeErrorMessage(res.Error)
		result.Status = model.StatusMajorOutage
		result.ErrorMessage = &msg
		return result
	}
	statusCode := res.StatusCode
	result.StatusCode = &statusCode
	result.Status = ClassifyResponse(res.StatusCode, res.Elapsed)
	return result
}

func ClassifyResponse(statusCode int, elapsed time.Duration) model.Status {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return model.StatusMajorOutage
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return model.StatusOperational
	case statusCode >= http.StatusBadRequest:
		return model.StatusDegraded
	case elapsed.Milliseconds() > SlowResponseThreshold.Milliseconds():
		return model.StatusDegraded
	default:
		return model.StatusOperational
	}
}

func probeErrorMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}

func NewChecker(client ServiceClient, resultRepo repository.CheckResultRepository, publisher exporter.Publisher, defaultTimeout time.Duration, logger *zap.Logger) Checker {
	return &checker{
		client:         client,
		resultRepo:     resultRepo,
		publisher:      publisher,
		defaultTimeout: defaultTimeout,
		now: func() time.Time {
			return time.Now().UTC()
		},
		logger: logger,
	}
}
