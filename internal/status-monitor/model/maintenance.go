package model

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) IsValid() bool {
	return s == MaintenanceStatusScheduled || s == MaintenanceStatusInProgress || s == MaintenanceStatusCompleted
}

type MaintenanceWindow struct {
	ID               string `gorm:"primaryKey"`
	Title            string
	Description      string
	ScheduledStart   time.Time
	ScheduledEnd     time.Time
	ActualStart      *time.Time
	ActualEnd        *time.Time
	Status           MaintenanceStatus `gorm:"index"`
	AffectedServices []string          `gorm:"serializer:json;type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
