package response

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"time"
)

type ServiceResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	URL                  *string   `json:"url"`
	Category             string    `json:"category"`
	CheckIntervalSeconds int       `json:"checkIntervalSeconds"`
	TimeoutMs            int       `json:"timeoutMs"`
	ExpectedStatusCode   int       `json:"expectedStatusCode"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func NewServiceResponse(s model.Service) ServiceResponse {
	return ServiceResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		URL:                  s.URL,
		Category:             s.Category,
		CheckIntervalSeconds: s.CheckIntervalSeconds,
		TimeoutMs:            s.TimeoutMs,
		ExpectedStatusCode:   s.ExpectedStatusCode,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

type CheckResultResponse struct {
	ID             uint64       `json:"id"`
	ServiceID      string       `json:"serviceId"`
	Status         model.Status `json:"status"`
	ResponseTimeMs *int64       `json:"responseTime"`
	StatusCode     *int         `json:"statusCode"`
	ErrorMessage   *string      `json:"errorMessage"`
	CheckedAt      time.Time    `json:"checkedAt"`
}

func NewCheckResultResponses(results []model.CheckResult) []CheckResultResponse {
	res := make([]CheckResultResponse, 0, len(results))
	for _, r := range results {
		res = append(res, CheckResultResponse{
			ID:             r.ID,
			ServiceID:      r.ServiceID,
			Status:         r.Status,
			ResponseTimeMs: r.ResponseTimeMs,
			StatusCode:     r.StatusCode,
			ErrorMessage:   r.ErrorMessage,
			CheckedAt:      r.CheckedAt,
		})
	}
	return res
}
