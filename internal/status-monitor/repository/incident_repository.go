package repository

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=incident_repository.go -destination=../mocks/repository/incident_repository_mock.go -package=mockrepository

const (
	IncidentFilterActive   = "active"
	IncidentFilterResolved = "resolved"
)

type IncidentFilter struct {
	// Status is IncidentFilterActive, IncidentFilterResolved or empty for all.
	Status string
	// Limit <= 0 returns every match.
	Limit int
}

// IncidentMutator changes an incident loaded inside a transaction and returns the
// update entry to append.
type IncidentMutator func(incident *model.Incident) (model.IncidentUpdate, error)

type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error)
	GetIncidentByID(ctx context.Context, id string) (model.Incident, error)
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]model.Incident, error)
	AppendIncidentUpdate(ctx context.Context, id string, mutate IncidentMutator) (model.Incident, error)
	DeleteIncidentByID(ctx context.Context, id string) error
}

type incidentRepository struct {
	db *gorm.DB
}

func preloadUpdates(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "timestamp"}},
		{Column: clause.Column{Name: "id"}},
	}})
}

func (r *incidentRepository) CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error) {
	result := r.db.WithContext(ctx).Create(&incident)
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.CreateIncident: %w", result.Error)
	}
	return incident, nil
}

func (r *incidentRepository) GetIncidentByID(ctx context.Context, id string) (model.Incident, error) {
	incident, err := r.getIncident(r.db.WithContext(ctx), id)
	if err != nil {
		return incident, fmt.Errorf("IncidentRepository.GetIncidentByID: %w", err)
	}
	return incident, nil
}

func (r *incidentRepository) getIncident(db *gorm.DB, id string) (model.Incident, error) {
	var incident model.Incident
	result := db.Preload("Updates", preloadUpdates).First(&incident, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return incident, apperrors.ErrIncidentNotFound
		}
		return incident, result.Error
	}
	return incident, nil
}

func (r *incidentRepository) ListIncidents(ctx context.Context, filter IncidentFilter) ([]model.Incident, error) {
	query := r.db.WithContext(ctx).Preload("Updates", preloadUpdates)
	switch filter.Status {
	case IncidentFilterActive:
		query = query.Where("status <> ?", model.IncidentStatusResolved)
	case IncidentFilterResolved:
		query = query.Where("status = ?", model.IncidentStatusResolved)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	incidents := make([]model.Incident, 0)
	result := query.Order("created_at DESC, id DESC").Find(&incidents)
	if result.Error != nil {
		return nil, fmt.Errorf("IncidentRepository.ListIncidents: %w", result.Error)
	}
	return incidents, nil
}

// AppendIncidentUpdate loads the incident, applies mutate and stores both the
// changed incident and the returned update in one transaction.
func (r *incidentRepository) AppendIncidentUpdate(ctx context.Context, id string, mutate IncidentMutator) (model.Incident, error) {
	var incident model.Incident
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var e error
		incident, e = r.getIncident(query, id)
		if e != nil {
			return e
		}
		update, e := mutate(&incident)
		if e != nil {
			return e
		}
		update.IncidentID = incident.ID
		if e = tx.Create(&update).Error; e != nil {
			return translateForeignKeyError(e, apperrors.ErrIncidentNotFound)
		}
		e = tx.Model(&model.Incident{}).Where("id = ?", incident.ID).Updates(map[string]any{
			"status":      incident.Status,
			"updated_at":  incident.UpdatedAt,
			"resolved_at": incident.ResolvedAt,
		}).Error
		if e != nil {
			return e
		}
		incident.Updates = append(incident.Updates, update)
		return nil
	})
	if err != nil {
		return incident, fmt.Errorf("IncidentRepository.AppendIncidentUpdate: %w", err)
	}
	return incident, nil
}

func (r *incidentRepository) DeleteIncidentByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e := tx.Where("incident_id = ?", id).Delete(&model.IncidentUpdate{}).Error; e != nil {
			return e
		}
		result := tx.Where("id = ?", id).Delete(&model.Incident{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrIncidentNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("IncidentRepository.DeleteIncidentByID: %w", err)
	}
	return nil
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}
