package response

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"time"
)

type ServiceStatusResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Status        model.Status `json:"status"`
	ResponseTime  *int64       `json:"responseTime"`
	LastCheckedAt *time.Time   `json:"lastChecked"`
}

type CategoryResponse struct {
	Name     string                  `json:"name"`
	Status   model.Status            `json:"status"`
	Services []ServiceStatusResponse `json:"services"`
}

type StatusResponse struct {
	Overall     model.Status          `json:"overall"`
	Categories  []CategoryResponse    `json:"categories"`
	Incidents   []IncidentResponse    `json:"incidents"`
	Maintenance []MaintenanceResponse `json:"maintenance"`
	LastUpdated *time.Time            `json:"lastUpdated"`
}

func NewStatusResponse(summary model.StatusSummary) StatusResponse {
	categories := make([]CategoryResponse, 0, len(summary.Categories))
	for _, category := range summary.Categories {
		services := make([]ServiceStatusResponse, 0, len(category.Services))
		for _, state := range category.Services {
			services = append(services, ServiceStatusResponse{
				ID:            state.Service.ID,
				Name:          state.Service.Name,
				Description:   state.Service.Description,
				Status:        state.Status,
				ResponseTime:  state.ResponseTimeMs,
				LastCheckedAt: state.LastCheckedAt,
			})
		}
		categories = append(categories, CategoryResponse{
			Name:     category.Name,
			Status:   category.Status,
			Services: services,
		})
	}
	return StatusResponse{
		Overall:     summary.Overall,
		Categories:  categories,
		Incidents:   NewIncidentResponses(summary.Incidents),
		Maintenance: NewMaintenanceResponses(summary.Maintenance),
		LastUpdated: summary.LastUpdated,
	}
}

type StatsResponse struct {
	ServiceID       string       `json:"serviceId,omitempty"`
	Days            int          `json:"days"`
	Uptime          float64      `json:"uptime"`
	AvgResponseTime float64      `json:"avgResponseTime"`
	IncidentCount   int64        `json:"incidentCount"`
	TotalChecks     int64        `json:"totalChecks"`
	CurrentStatus   model.Status `json:"currentStatus"`
}

func NewStatsResponse(stats model.Stats) StatsResponse {
	return StatsResponse{
		ServiceID:       stats.ServiceID,
		Days:            stats.Days,
		Uptime:          stats.Uptime,
		AvgResponseTime: stats.AvgResponseTimeMs,
		IncidentCount:   stats.IncidentCount,
		TotalChecks:     stats.TotalChecks,
		CurrentStatus:   stats.CurrentStatus,
	}
}

type DayStatusResponse struct {
	Date         string       `json:"date"`
	Status       model.Status `json:"status"`
	Uptime       float64      `json:"uptime"`
	Incidents    int64        `json:"incidents"`
	ResponseTime float64      `json:"responseTime"`
	TotalChecks  int64        `json:"totalChecks"`
}

func NewDayStatusResponses(days []model.DayStatus) []DayStatusResponse {
	res := make([]DayStatusResponse, 0, len(days))
	for _, d := range days {
		res = append(res, DayStatusResponse{
			Date:         d.Date,
			Status:       d.Status,
			Uptime:       d.Uptime,
			Incidents:    d.Incidents,
			ResponseTime: d.ResponseTimeMs,
			TotalChecks:  d.TotalChecks,
		})
	}
	return res
}

type UptimeDayResponse struct {
	Date        string  `json:"date"`
	Uptime      float64 `json:"uptime"`
	TotalChecks int64   `json:"totalChecks"`
}

func NewUptimeDayResponses(days []model.DayStatus) []UptimeDayResponse {
	res := make([]UptimeDayResponse, 0, len(days))
	for _, d := range days {
		res = append(res, UptimeDayResponse{
			Date:        d.Date,
			Uptime:      d.Uptime,
			TotalChecks: d.TotalChecks,
		})
	}
	return res
}
