package exporter

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
)

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

const checkResultIndexMapping = `{
  "mappings": {
    "properties": {
      "serviceId":      {"type": "keyword"},
      "serviceName":    {"type": "keyword"},
      "category":       {"type": "keyword"},
      "status":         {"type": "keyword"},
      "responseTimeMs": {"type": "long"},
      "statusCode":     {"type": "integer"},
      "errorMessage":   {"type": "text"},
      "checkedAt":      {"type": "date"}
    }
  }
}`

// EnsureCheckResultIndex creates index with the check result mapping unless it already exists.
func EnsureCheckResultIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("EnsureCheckResultIndex: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("EnsureCheckResultIndex: %w", apperrors.NewElasticSearchError(res.StatusCode, "", "unexpected response checking index"))
	}

	res, err = es.Indices.Create(
		index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(strings.NewReader(checkResultIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("EnsureCheckResultIndex: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var esErr esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&esErr); err != nil {
			return fmt.Errorf("EnsureCheckResultIndex decode err response: %w", err)
		}
		if esErr.Error.Type == "resource_already_exists_exception" {
			return nil
		}
		return fmt.Errorf("EnsureCheckResultIndex: %w", apperrors.NewElasticSearchError(res.StatusCode, esErr.Error.Type, esErr.Error.Reason))
	}
	return nil
}

type elasticPublisher struct {
	es    *elasticsearch.Client
	index string
}

func (e *elasticPublisher) Publish(ctx context.Context, service model.Service, result model.CheckResult) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(newCheckResultEvent(service, result)); err != nil {
		return fmt.Errorf("elasticPublisher.Publish encode document: %w", err)
	}
	res, err := e.es.Index(
		e.index,
		&buf,
		e.es.Index.WithContext(ctx),
		e.es.Index.WithDocumentID(strconv.FormatUint(result.ID, 10)),
	)
	if err != nil {
		return fmt.Errorf("elasticPublisher.Publish: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var esErr esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&esErr); err != nil {
			return fmt.Errorf("elasticPublisher.Publish decode err response: %w", err)
		}
		return fmt.Errorf("elasticPublisher.Publish: %w", apperrors.NewElasticSearchError(res.StatusCode, esErr.Error.Type, esErr.Error.Reason))
	}
	return nil
}

func (e *elasticPublisher) Close() error {
	return nil
}

func NewElasticPublisher(es *elasticsearch.Client, index string) Publisher {
	return &elasticPublisher{
		es:    es,
		index: index,
	}
}
