package model

import "time"

type IncidentStatus string

const (
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusIdentified    IncidentStatus = "identified"
	IncidentStatusMonitoring    IncidentStatus = "monitoring"
	IncidentStatusResolved      IncidentStatus = "resolved"
)

// Stage is the position of s in the incident lifecycle, -1 when s is unknown.
func (s IncidentStatus) Stage() int {
	switch s {
	case IncidentStatusInvestigating:
		return 0
	case IncidentStatusIdentified:
		return 1
	case IncidentStatusMonitoring:
		return 2
	case IncidentStatusResolved:
		return 3
	default:
		return -1
	}
}

func (s IncidentStatus) IsValid() bool {
	return s.Stage() >= 0
}

// CanTransitionTo reports whether an incident in status s may move to next.
// Staying in the same status is allowed so that follow-up notes can be posted.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	return next.IsValid() && next.Stage() >= s.Stage()
}

type IncidentImpact string

const (
	IncidentImpactMinor    IncidentImpact = "minor"
	IncidentImpactMajor    IncidentImpact = "major"
	IncidentImpactCritical IncidentImpact = "critical"
)

func (i IncidentImpact) IsValid() bool {
	return i == IncidentImpactMinor || i == IncidentImpactMajor || i == IncidentImpactCritical
}

// ServiceStatus maps an incident impact to the status it imposes on affected services.
func (i IncidentImpact) ServiceStatus() Status {
	switch i {
	case IncidentImpactCritical:
		return StatusMajorOutage
	case IncidentImpactMajor:
		return StatusPartialOutage
	case IncidentImpactMinor:
		return StatusDegraded
	default:
		return StatusOperational
	}
}

type Incident struct {
	ID               string `gorm:"primaryKey"`
	Title            string
	Description      string
	Status           IncidentStatus `gorm:"index"`
	Impact           IncidentImpact
	AffectedServices []string `gorm:"serializer:json;type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResolvedAt       *time.Time
	Updates          []IncidentUpdate `gorm:"foreignKey:IncidentID;constraint:OnDelete:CASCADE"`
}

func (i Incident) IsActive() bool {
	return i.Status != IncidentStatusResolved
}

type IncidentUpdate struct {
	ID         string `gorm:"primaryKey"`
	IncidentID string `gorm:"index"`
	Message    string
	Status     IncidentStatus
	Timestamp  time.Time
}
