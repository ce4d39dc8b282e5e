package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ServiceClient interface {
	Probe(ctx context.Context, url string) (ProbeResponse, error)
}

type ProbeResponse struct {
	StatusCode int
	Error      error
	Elapsed    time.Duration
}

type serviceClient struct {
	client *http.Client
}

// Probe returns error when failed to create *http.Request, error received when execute request is in ProbeResponse.Error
func (s *serviceClient) Probe(ctx context.Context, url string) (ProbeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProbeResponse{}, fmt.Errorf("ServiceClient.Probe creating request: %w", err)
	}
	req.Header.Set("User-Agent", "status-monitor/1.0")
	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return ProbeResponse{
			Error:   err,
			Elapsed: time.Since(start),
		}, nil
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
	return ProbeResponse{
		StatusCode: resp.StatusCode,
		Elapsed:    time.Since(start),
	}, nil
}

// NewServiceClient does not follow redirects; a 3xx answer already proves the service is up.
func NewServiceClient() ServiceClient {
	return &serviceClient{
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}
