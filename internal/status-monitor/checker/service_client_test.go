package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceClient_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			http.Redirect(w, r, "/health", http.StatusFound)
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()
	client := NewServiceClient()

	testCases := []struct {
		name           string
		url            string
		timeout        time.Duration
		expectedStatus int
		expectProbeErr bool
		expectError    bool
	}{
		{
			name:           "Probe healthy endpoint",
			url:            server.URL + "/health",
			timeout:        time.Second,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Probe does not follow redirects",
			url:            server.URL + "/moved",
			timeout:        time.Second,
			expectedStatus: http.StatusFound,
		},
		{
			name:           "Probe missing endpoint",
			url:            server.URL + "/info",
			timeout:        time.Second,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Probe times out",
			url:            server.URL + "/slow",
			timeout:        20 * time.Millisecond,
			expectProbeErr: true,
		},
		{
			name:        "Probe with invalid url",
			url:         "://bad url",
			timeout:     time.Second,
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), tc.timeout)
			defer cancel()
			res, err := client.Probe(ctx, tc.url)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.expectProbeErr {
				assert.ErrorIs(t, res.Error, context.DeadlineExceeded)
				return
			}
			assert.NoError(t, res.Error)
			assert.Equal(t, tc.expectedStatus, res.StatusCode)
			assert.Positive(t, res.Elapsed)
		})
	}
}
