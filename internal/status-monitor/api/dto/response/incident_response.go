package response

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"time"
)

type IncidentUpdateResponse struct {
	ID        string               `json:"id"`
	Message   string               `json:"message"`
	Status    model.IncidentStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
}

type IncidentResponse struct {
	ID               string                   `json:"id"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	Status           model.IncidentStatus     `json:"status"`
	Impact           model.IncidentImpact     `json:"impact"`
	AffectedServices []string                 `json:"affectedServices"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
	ResolvedAt       *time.Time               `json:"resolvedAt"`
	Updates          []IncidentUpdateResponse `json:"updates"`
}

func NewIncidentResponse(incident model.Incident) IncidentResponse {
	updates := make([]IncidentUpdateResponse, 0, len(incident.Updates))
	for _, u := range incident.Updates {
		updates = append(updates, IncidentUpdateResponse{
			ID:        u.ID,
			Message:   u.Message,
			Status:    u.Status,
			Timestamp: u.Timestamp,
		})
	}
	affected := incident.AffectedServices
	if affected == nil {
		affected = []string{}
	}
	return IncidentResponse{
		ID:               incident.ID,
		Title:            incident.Title,
		Description:      incident.Description,
		Status:           incident.Status,
		Impact:           incident.Impact,
		AffectedServices: affected,
		CreatedAt:        incident.CreatedAt,
		UpdatedAt:        incident.UpdatedAt,
		ResolvedAt:       incident.ResolvedAt,
		Updates:          updates,
	}
}

func NewIncidentResponses(incidents []model.Incident) []IncidentResponse {
	res := make([]IncidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		res = append(res, NewIncidentResponse(incident))
	}
	return res
}
