package service

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DefaultIncidentLimit = 50

//go:generate mockgen -source=incident_service.go -destination=../mocks/service/incident_service_mock.go -package=mockservice

type IncidentService interface {
	CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error)
	GetIncident(ctx context.Context, id string) (model.Incident, error)
	ListIncidents(ctx context.Context, status string, limit int) ([]model.Incident, error)
	UpdateIncident(ctx context.Context, id string, message string, status model.IncidentStatus) (model.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
}

type incidentService struct {
	incidentRepo repository.IncidentRepository
	now          func() time.Time
}

// CreateIncident opens the incident in investigating and records the description as its first update.
func (s *incidentService) CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error) {
	now := s.now()
	incident.ID = uuid.NewString()
	incident.Status = model.IncidentStatusInvestigating
	incident.AffectedServices = uniqueIDs(incident.AffectedServices)
	incident.CreatedAt = now
	incident.UpdatedAt = now
	incident.ResolvedAt = nil
	incident.Updates = []model.IncidentUpdate{{
		ID:         uuid.NewString(),
		IncidentID: incident.ID,
		Message:    incident.Description,
		Status:     model.IncidentStatusInvestigating,
		Timestamp:  now,
	}}
	created, err := s.incidentRepo.CreateIncident(ctx, incident)
	if err != nil {
		return model.Incident{}, fmt.Errorf("IncidentService.CreateIncident: %w", err)
	}
	return created, nil
}

func (s *incidentService) GetIncident(ctx context.Context, id string) (model.Incident, error) {
	incident, err := s.incidentRepo.GetIncidentByID(ctx, id)
	if err != nil {
		return model.Incident{}, fmt.Errorf("IncidentService.GetIncident: %w", err)
	}
	return incident, nil
}

func (s *incidentService) ListIncidents(ctx context.Context, status string, limit int) ([]model.Incident, error) {
	if limit <= 0 {
		limit = DefaultIncidentLimit
	}
	incidents, err := s.incidentRepo.ListIncidents(ctx, repository.IncidentFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("IncidentService.ListIncidents: %w", err)
	}
	return incidents, nil
}

// UpdateIncident appends an update and moves the incident forward. resolvedAt is only stamped the first time.
func (s *incidentService) UpdateIncident(ctx context.Context, id string, message string, status model.IncidentStatus) (model.Incident, error) {
	incident, err := s.incidentRepo.AppendIncidentUpdate(ctx, id, func(incident *model.Incident) (model.IncidentUpdate, error) {
		if !incident.Status.CanTransitionTo(status) {
			return model.IncidentUpdate{}, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, incident.Status, status)
		}
		now := s.now()
		incident.Status = status
		incident.UpdatedAt = now
		if status == model.IncidentStatusResolved && incident.ResolvedAt == nil {
			incident.ResolvedAt = &now
		}
		return model.IncidentUpdate{
			ID:         uuid.NewString(),
			IncidentID: incident.ID,
			Message:    message,
			Status:     status,
			Timestamp:  now,
		}, nil
	})
	if err != nil {
		return model.Incident{}, fmt.Errorf("IncidentService.UpdateIncident: %w", err)
	}
	return incident, nil
}

func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	if err := s.incidentRepo.DeleteIncidentByID(ctx, id); err != nil {
		return fmt.Errorf("IncidentService.DeleteIncident: %w", err)
	}
	return nil
}

// uniqueIDs drops empty and repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func NewIncidentService(incidentRepo repository.IncidentRepository) IncidentService {
	return &incidentService{
		incidentRepo: incidentRepo,
		now:          utcNow,
	}
}
