package exporter

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
	Request  *http.Request
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Request = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, *mockRoundTripper, error) {
	if err != nil {
		rt := &mockRoundTripper{Err: err}
		es, e := elasticsearch.NewClient(elasticsearch.Config{
			Transport: rt,
		})
		return es, rt, e
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	rt := &mockRoundTripper{
		Response: &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		},
	}
	es, e := elasticsearch.NewClient(elasticsearch.Config{
		Transport: rt,
	})
	return es, rt, e
}

func TestElasticPublisher_Publish(t *testing.T) {
	testCases := []struct {
		name        string
		statusCode  int
		body        string
		transport   error
		expectErr   bool
		expectESErr *apperrors.ElasticSearchError
	}{
		{
			name:       "Success document indexed",
			statusCode: http.StatusCreated,
			body:       `{"_index":"check_results","_id":"42","result":"created"}`,
		},
		{
			name:       "Failure elasticsearch rejects document",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"type":"mapper_parsing_exception","reason":"failed to parse field [status]"},"status":400}`,
			expectErr:  true,
			expectESErr: &apperrors.ElasticSearchError{
				StatusCode: http.StatusBadRequest,
				Type:       "mapper_parsing_exception",
				Reason:     "failed to parse field [status]",
			},
		},
		{
			name:       "Failure invalid error body",
			statusCode: http.StatusInternalServerError,
			body:       `not json`,
			expectErr:  true,
		},
		{
			name:      "Failure transport error",
			transport: errors.New("connection refused"),
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			es, rt, err := newMockEsClient(tc.statusCode, tc.body, tc.transport)
			require.NoError(t, err)

			err = NewElasticPublisher(es, "check_results").Publish(context.Background(), testService, testResult)
			if !tc.expectErr {
				require.NoError(t, err)
				require.NotNil(t, rt.Request)
				assert.Equal(t, "/check_results/_doc/42", rt.Request.URL.Path)
				return
			}
			require.Error(t, err)
			if tc.expectESErr != nil {
				var esErr *apperrors.ElasticSearchError
				require.ErrorAs(t, err, &esErr)
				assert.Equal(t, tc.expectESErr, esErr)
			}
		})
	}
}

type sequenceRoundTripper struct {
	responses []*http.Response
	requests  []*http.Request
}

func (s *sequenceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return nil, errors.New("unexpected request")
	}
	res := s.responses[0]
	s.responses = s.responses[1:]
	return res, nil
}

func esResponse(statusCode int, body string) *http.Response {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func TestEnsureCheckResultIndex(t *testing.T) {
	testCases := []struct {
		name             string
		responses        []*http.Response
		expectErr        bool
		expectedRequests []string
	}{
		{
			name:             "Index already exists",
			responses:        []*http.Response{esResponse(http.StatusOK, ``)},
			expectedRequests: []string{"HEAD /check_results"},
		},
		{
			name: "Index created",
			responses: []*http.Response{
				esResponse(http.StatusNotFound, ``),
				esResponse(http.StatusOK, `{"acknowledged":true,"index":"check_results"}`),
			},
			expectedRequests: []string{"HEAD /check_results", "PUT /check_results"},
		},
		{
			name: "Index created concurrently",
			responses: []*http.Response{
				esResponse(http.StatusNotFound, ``),
				esResponse(http.StatusBadRequest, `{"error":{"type":"resource_already_exists_exception","reason":"index [check_results] already exists"},"status":400}`),
			},
			expectedRequests: []string{"HEAD /check_results", "PUT /check_results"},
		},
		{
			name: "Create rejected",
			responses: []*http.Response{
				esResponse(http.StatusNotFound, ``),
				esResponse(http.StatusBadRequest, `{"error":{"type":"mapper_parsing_exception","reason":"bad mapping"},"status":400}`),
			},
			expectErr:        true,
			expectedRequests: []string{"HEAD /check_results", "PUT /check_results"},
		},
		{
			name:             "Unexpected exists response",
			responses:        []*http.Response{esResponse(http.StatusForbidden, ``)},
			expectErr:        true,
			expectedRequests: []string{"HEAD /check_results"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rt := &sequenceRoundTripper{responses: tc.responses}
			es, err := elasticsearch.NewClient(elasticsearch.Config{Transport: rt})
			require.NoError(t, err)

			err = EnsureCheckResultIndex(context.Background(), es, "check_results")
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			var got []string
			for _, req := range rt.requests {
				got = append(got, req.Method+" "+req.URL.Path)
			}
			assert.Equal(t, tc.expectedRequests, got)
		})
	}
}
