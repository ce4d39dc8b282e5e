package model

import "time"

// ServiceState is a service together with its effective status.
type ServiceState struct {
	Service        Service
	Status         Status
	ResponseTimeMs *int64
	LastCheckedAt  *time.Time
}

type CategoryStatus struct {
	Name     string
	Status   Status
	Services []ServiceState
}

// StatusSummary is the aggregated view served on the status page.
type StatusSummary struct {
	Overall     Status
	Categories  []CategoryStatus
	Incidents   []Incident
	Maintenance []MaintenanceWindow
	LastUpdated *time.Time
}

// Stats is the rolling statistics for one service or, with an empty ServiceID, all services.
type Stats struct {
	ServiceID         string
	Days              int
	Uptime            float64
	AvgResponseTimeMs float64
	IncidentCount     int64
	TotalChecks       int64
	CurrentStatus     Status
}

// DayStatus is one bucket of the history timeline.
type DayStatus struct {
	Date           string
	Status         Status
	Uptime         float64
	Incidents      int64
	ResponseTimeMs float64
	TotalChecks    int64
}
