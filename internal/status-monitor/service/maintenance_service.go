package service

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=maintenance_service.go -destination=../mocks/service/maintenance_service_mock.go -package=mockservice

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, window model.MaintenanceWindow) (model.MaintenanceWindow, error)
	GetMaintenance(ctx context.Context, id string) (model.MaintenanceWindow, error)
	ListMaintenance(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceWindow, error)
	UpdateMaintenance(ctx context.Context, id string, patch MaintenancePatch) (model.MaintenanceWindow, error)
	DeleteMaintenance(ctx context.Context, id string) error
	// AutoTransition moves windows along their schedule and returns how many changed.
	AutoTransition(ctx context.Context) (int, error)
}

// MaintenancePatch holds the fields to change; nil fields are left untouched.
type MaintenancePatch struct {
	Title            *string
	Description      *string
	ScheduledStart   *time.Time
	ScheduledEnd     *time.Time
	Status           *model.MaintenanceStatus
	AffectedServices *[]string
}

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	logger          *zap.Logger
	now             func() time.Time
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, window model.MaintenanceWindow) (model.MaintenanceWindow, error) {
	if !window.ScheduledEnd.After(window.ScheduledStart) {
		return model.MaintenanceWindow{}, fmt.Errorf("MaintenanceService.CreateMaintenance: %w", apperrors.ErrInvalidMaintenanceTime)
	}
	now := s.now()
	window.ID = uuid.NewString()
	window.ScheduledStart = window.ScheduledStart.UTC()
	window.ScheduledEnd = window.ScheduledEnd.UTC()
	window.AffectedServices = uniqueIDs(window.AffectedServices)
	window.ActualStart = nil
	window.ActualEnd = nil
	window.CreatedAt = now
	window.UpdatedAt = now
	status := window.Status
	if status == "" {
		status = model.MaintenanceStatusScheduled
	}
	window.Status = model.MaintenanceStatusScheduled
	applyMaintenanceStatus(&window, status, now)

	created, err := s.maintenanceRepo.CreateMaintenance(ctx, window)
	if err != nil {
		return model.MaintenanceWindow{}, fmt.Errorf("MaintenanceService.CreateMaintenance: %w", err)
	}
	return created, nil
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id string) (model.MaintenanceWindow, error) {
	window, err := s.maintenanceRepo.GetMaintenanceByID(ctx, id)
	if err != nil {
		return model.MaintenanceWindow{}, fmt.Errorf("MaintenanceService.GetMaintenance: %w", err)
	}
	return window, nil
}

func (s *maintenanceService) ListMaintenance(ctx context.Context, status model.MaintenanceStatus) ([]model.MaintenanceWindow, error) {
	windows, err := s.maintenanceRepo.ListMaintenance(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("MaintenanceService.ListMaintenance: %w", err)
	}
	return windows, nil
}

func (s *maintenanceService) UpdateMaintenance(ctx context.Context, id string, patch MaintenancePatch) (model.MaintenanceWindow, error) {
	window, err := s.maintenanceRepo.UpdateMaintenance(ctx, id, func(w *model.MaintenanceWindow) error {
		if patch.Title != nil {
			w.Title = *patch.Title
		}
		if patch.Description != nil {
			w.Description = *patch.Description
		}
		if patch.ScheduledStart != nil {
			w.ScheduledStart = patch.ScheduledStart.UTC()
		}
		if patch.ScheduledEnd != nil {
			w.ScheduledEnd = patch.ScheduledEnd.UTC()
		}
		if patch.AffectedServices != nil {
			w.AffectedServices = uniqueIDs(*patch.AffectedServices)
		}
		if !w.ScheduledEnd.After(w.ScheduledStart) {
			return apperrors.ErrInvalidMaintenanceTime
		}
		now := s.now()
		if patch.Status != nil {
			applyMaintenanceStatus(w, *patch.Status, now)
		}
		w.UpdatedAt = now
		return nil
	})
	if err != nil {
		return model.MaintenanceWindow{}, fmt.Errorf("MaintenanceService.UpdateMaintenance: %w", err)
	}
	return window, nil
}

func (s *maintenanceService) DeleteMaintenance(ctx context.Context, id string) error {
	if err := s.maintenanceRepo.DeleteMaintenanceByID(ctx, id); err != nil {
		return fmt.Errorf("MaintenanceService.DeleteMaintenance: %w", err)
	}
	return nil
}

func (s *maintenanceService) AutoTransition(ctx context.Context) (int, error) {
	now := s.now()
	var candidates []model.MaintenanceWindow
	for _, status := range []model.MaintenanceStatus{model.MaintenanceStatusScheduled, model.MaintenanceStatusInProgress} {
		windows, err := s.maintenanceRepo.ListMaintenance(ctx, status)
		if err != nil {
			return 0, fmt.Errorf("MaintenanceService.AutoTransition: %w", err)
		}
		candidates = append(candidates, windows...)
	}

	changed := 0
	for _, candidate := range candidates {
		if nextMaintenanceStatus(candidate, now) == candidate.Status {
			continue
		}
		updated := false
		_, err := s.maintenanceRepo.UpdateMaintenance(ctx, candidate.ID, func(w *model.MaintenanceWindow) error {
			next := nextMaintenanceStatus(*w, now)
			if next == w.Status {
				return nil
			}
			applyMaintenanceStatus(w, next, now)
			w.UpdatedAt = now
			updated = true
			return nil
		})
		if err != nil {
			s.logger.Error("failed to transition maintenance window", zap.String("maintenance_id", candidate.ID), zap.Error(fmt.Errorf("MaintenanceService.AutoTransition: %w", err)))
			continue
		}
		if updated {
			changed++
		}
	}
	return changed, nil
}

// nextMaintenanceStatus is the status the schedule implies for w at now. Completed windows never move.
func nextMaintenanceStatus(w model.MaintenanceWindow, now time.Time) model.MaintenanceStatus {
	switch w.Status {
	case model.MaintenanceStatusScheduled, model.MaintenanceStatusInProgress:
		if !now.Before(w.ScheduledEnd) {
			return model.MaintenanceStatusCompleted
		}
		if !now.Before(w.ScheduledStart) {
			return model.MaintenanceStatusInProgress
		}
	}
	return w.Status
}

// applyMaintenanceStatus sets status and stamps actualStart/actualEnd when a phase is entered.
func applyMaintenanceStatus(w *model.MaintenanceWindow, status model.MaintenanceStatus, now time.Time) {
	if status == w.Status {
		return
	}
	switch status {
	case model.MaintenanceStatusInProgress:
		w.ActualStart = &now
	case model.MaintenanceStatusCompleted:
		if w.ActualStart == nil {
			w.ActualStart = &now
		}
		if w.ActualEnd == nil {
			w.ActualEnd = &now
		}
	}
	w.Status = status
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
		now:             utcNow,
	}
}
