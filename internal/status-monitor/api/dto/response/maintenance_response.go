package response

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"time"
)

type MaintenanceResponse struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	ScheduledStart   time.Time               `json:"scheduledStart"`
	ScheduledEnd     time.Time               `json:"scheduledEnd"`
	ActualStart      *time.Time              `json:"actualStart"`
	ActualEnd        *time.Time              `json:"actualEnd"`
	Status           model.MaintenanceStatus `json:"status"`
	AffectedServices []string                `json:"affectedServices"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func NewMaintenanceResponse(w model.MaintenanceWindow) MaintenanceResponse {
	affected := w.AffectedServices
	if affected == nil {
		affected = []string{}
	}
	return MaintenanceResponse{
		ID:               w.ID,
		Title:            w.Title,
		Description:      w.Description,
		ScheduledStart:   w.ScheduledStart,
		ScheduledEnd:     w.ScheduledEnd,
		ActualStart:      w.ActualStart,
		ActualEnd:        w.ActualEnd,
		Status:           w.Status,
		AffectedServices: affected,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func NewMaintenanceResponses(windows []model.MaintenanceWindow) []MaintenanceResponse {
	res := make([]MaintenanceResponse, 0, len(windows))
	for _, w := range windows {
		res = append(res, NewMaintenanceResponse(w))
	}
	return res
}
