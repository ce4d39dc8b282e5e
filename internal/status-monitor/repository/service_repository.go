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

//go:generate mockgen -source=service_repository.go -destination=../mocks/repository/service_repository_mock.go -package=mockrepository

type ServiceRepository interface {
	UpsertServices(ctx context.Context, services []model.Service) error
	GetServiceByID(ctx context.Context, id string) (model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// UpsertServices inserts the services or refreshes every column except created_at.
func (s *serviceRepository) UpsertServices(ctx context.Context, services []model.Service) error {
	if len(services) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "url", "category", "check_interval_seconds", "timeout_ms", "expected_status_code", "updated_at",
		}),
	}).Create(&services)
	if result.Error != nil {
		return fmt.Errorf("ServiceRepository.UpsertServices: %w", result.Error)
	}
	return nil
}

func (s *serviceRepository) GetServiceByID(ctx context.Context, id string) (model.Service, error) {
	var service model.Service
	result := s.db.WithContext(ctx).First(&service, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return service, fmt.Errorf("ServiceRepository.GetServiceByID: %w", apperrors.ErrServiceNotFound)
		}
		return service, fmt.Errorf("ServiceRepository.GetServiceByID: %w", result.Error)
	}
	return service, nil
}

func (s *serviceRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	result := s.db.WithContext(ctx).Order("category ASC, name ASC").Find(&services)
	if result.Error != nil {
		return nil, fmt.Errorf("ServiceRepository.ListServices: %w", result.Error)
	}
	return services, nil
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}
