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

//go:generate mockgen -source=maintenance_repository.go -destination=../mocks/repository/maintenance_repository_mock.go -package=mockrepository

type MaintenanceMutator func(window *model.MaintenanceWindow) error

type MaintenanceRepository interface {
	CreateMaintenance(ctx context.Context, window model.MaintenanceWindow) (model.MaintenanceWindow, error)
	GetMaintenanceByID(ctx context.Context, id string) (model.MaintenanceWindow, error)
	// ListMaintenance filters by status when status is not empty, earliest start first.
	ListMaintenance(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceWindow, error)
	UpdateMaintenance(ctx context.Context, id string, mutate MaintenanceMutator) (model.MaintenanceWindow, error)
	DeleteMaintenanceByID(ctx context.Context, id string) error
}

type maintenanceRepository struct {
	db *gorm.DB
}

func (r *maintenanceRepository) CreateMaintenance(ctx context.Context, window model.MaintenanceWindow) (model.MaintenanceWindow, error) {
	result := r.db.WithContext(ctx).Create(&window)
	if result.Error != nil {
		return window, fmt.Errorf("MaintenanceRepository.CreateMaintenance: %w", result.Error)
	}
	return window, nil
}

func (r *maintenanceRepository) GetMaintenanceByID(ctx context.Context, id string) (model.MaintenanceWindow, error) {
	var window model.MaintenanceWindow
	result := r.db.WithContext(ctx).First(&window, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return window, fmt.Errorf("MaintenanceRepository.GetMaintenanceByID: %w", apperrors.ErrMaintenanceNotFound)
		}
		return window, fmt.Errorf("MaintenanceRepository.GetMaintenanceByID: %w", result.Error)
	}
	return window, nil
}

func (r *maintenanceRepository) ListMaintenance(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceWindow, error) {
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	windows := make([]model.MaintenanceWindow, 0)
	result := query.Order("scheduled_start ASC, id ASC").Find(&windows)
	if result.Error != nil {
		return nil, fmt.Errorf("MaintenanceRepository.ListMaintenance: %w", result.Error)
	}
	return windows, nil
}

func (r *maintenanceRepository) UpdateMaintenance(ctx context.Context, id string, mutate MaintenanceMutator) (model.MaintenanceWindow, error) {
	var window model.MaintenanceWindow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if e := query.First(&window, "id = ?", id).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return apperrors.ErrMaintenanceNotFound
			}
			return e
		}
		if e := mutate(&window); e != nil {
			return e
		}
		return tx.Session(&gorm.Session{SkipHooks: true}).Save(&window).Error
	})
	if err != nil {
		return window, fmt.Errorf("MaintenanceRepository.UpdateMaintenance: %w", err)
	}
	return window, nil
}

func (r *maintenanceRepository) DeleteMaintenanceByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MaintenanceWindow{})
	if result.Error != nil {
		return fmt.Errorf("MaintenanceRepository.DeleteMaintenanceByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MaintenanceRepository.DeleteMaintenanceByID: %w", apperrors.ErrMaintenanceNotFound)
	}
	return nil
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}
