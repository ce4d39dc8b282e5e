package repository

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWindow(id string, status model.MaintenanceStatus, start time.Time) model.MaintenanceWindow {
	return model.MaintenanceWindow{
		ID:               id,
		Title:            "Database upgrade " + id,
		ScheduledStart:   start,
		ScheduledEnd:     start.Add(2 * time.Hour),
		Status:           status,
		AffectedServices: []string{"db"},
		CreatedAt:        baseTime,
		UpdatedAt:        baseTime,
	}
}

func TestMaintenanceRepository_CRUD(t *testing.T) {
	repo := NewMaintenanceRepository(setupSQLiteDB(t))
	ctx := context.Background()

	for _, w := range []model.MaintenanceWindow{
		newWindow("m-2", model.MaintenanceStatusScheduled, baseTime.Add(48*time.Hour)),
		newWindow("m-1", model.MaintenanceStatusInProgress, baseTime.Add(-time.Hour)),
		newWindow("m-3", model.MaintenanceStatusCompleted, baseTime.Add(-72*time.Hour)),
	} {
		_, err := repo.CreateMaintenance(ctx, w)
		require.NoError(t, err)
	}

	all, err := repo.ListMaintenance(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m-3", all[0].ID)
	assert.Equal(t, "m-1", all[1].ID)
	assert.Equal(t, "m-2", all[2].ID)

	inProgress, err := repo.ListMaintenance(ctx, model.MaintenanceStatusInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, []string{"db"}, inProgress[0].AffectedServices)

	window, err := repo.GetMaintenanceByID(ctx, "m-2")
	require.NoError(t, err)
	assert.True(t, window.ScheduledStart.Equal(baseTime.Add(48*time.Hour)))
	assert.Nil(t, window.ActualStart)

	_, err = repo.GetMaintenanceByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrMaintenanceNotFound)

	require.NoError(t, repo.DeleteMaintenanceByID(ctx, "m-3"))
	assert.ErrorIs(t, repo.DeleteMaintenanceByID(ctx, "m-3"), apperrors.ErrMaintenanceNotFound)
}

func TestMaintenanceRepository_UpdateMaintenance(t *testing.T) {
	repo := NewMaintenanceRepository(setupSQLiteDB(t))
	ctx := context.Background()
	_, err := repo.CreateMaintenance(ctx, newWindow("m-1", model.MaintenanceStatusScheduled, baseTime))
	require.NoError(t, err)

	startedAt := baseTime.Add(5 * time.Minute)
	updated, err := repo.UpdateMaintenance(ctx, "m-1", func(window *model.MaintenanceWindow) error {
		window.Status = model.MaintenanceStatusInProgress
		window.ActualStart = &startedAt
		window.AffectedServices = []string{"db", "api"}
		window.UpdatedAt = startedAt
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.MaintenanceStatusInProgress, updated.Status)

	stored, err := repo.GetMaintenanceByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, model.MaintenanceStatusInProgress, stored.Status)
	require.NotNil(t, stored.ActualStart)
	assert.True(t, stored.ActualStart.Equal(startedAt))
	assert.True(t, stored.UpdatedAt.Equal(startedAt))
	assert.True(t, stored.CreatedAt.Equal(baseTime))
	assert.Equal(t, []string{"db", "api"}, stored.AffectedServices)

	_, err = repo.UpdateMaintenance(ctx, "missing", func(window *model.MaintenanceWindow) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrMaintenanceNotFound)
}
