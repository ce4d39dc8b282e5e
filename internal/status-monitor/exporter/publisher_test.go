package exporter

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	testService = model.Service{ID: "api", Name: "API", Category: "Core"}
	testResult  = model.CheckResult{
		ID:             42,
		ServiceID:      "api",
		Status:         model.StatusOperational,
		ResponseTimeMs: ptr(int64(120)),
		StatusCode:     ptr(200),
		CheckedAt:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
)

func ptr[T any](v T) *T {
	return &v
}

type fakePublisher struct {
	calls    int
	err      error
	closeErr error
}

func (f *fakePublisher) Publish(_ context.Context, _ model.Service, _ model.CheckResult) error {
	f.calls++
	return f.err
}

func (f *fakePublisher) Close() error {
	return f.closeErr
}

func TestMultiPublisher_Publish(t *testing.T) {
	errKafka := errors.New("kafka is down")
	errES := errors.New("es is down")
	testCases := []struct {
		name        string
		publishers  []*fakePublisher
		expectedErr []error
	}{
		{
			name:       "Success no publishers",
			publishers: nil,
		},
		{
			name:       "Success all publishers succeed",
			publishers: []*fakePublisher{{}, {}},
		},
		{
			name:        "Failure errors from every failing publisher are joined",
			publishers:  []*fakePublisher{{err: errKafka}, {}, {err: errES}},
			expectedErr: []error{errKafka, errES},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var publishers []Publisher
			for _, p := range tc.publishers {
				publishers = append(publishers, p)
			}
			err := NewMultiPublisher(publishers...).Publish(context.Background(), testService, testResult)
			for _, p := range tc.publishers {
				assert.Equal(t, 1, p.calls)
			}
			if len(tc.expectedErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, e := range tc.expectedErr {
				assert.ErrorIs(t, err, e)
			}
		})
	}
}

func TestMultiPublisher_Close(t *testing.T) {
	errClose := errors.New("close failed")
	p := NewMultiPublisher(&fakePublisher{}, &fakePublisher{closeErr: errClose})
	assert.ErrorIs(t, p.Close(), errClose)
}
