package service

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"VCS_Status_Monitor/pkg/infra"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var baseTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type testStore struct {
	services    repository.ServiceRepository
	results     repository.CheckResultRepository
	incidents   repository.IncidentRepository
	maintenance repository.MaintenanceRepository
}

func setupStore(t *testing.T) testStore {
	db, err := infra.NewSQLiteConnection(infra.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, e := db.DB()
		if e == nil {
			sqlDB.Close()
		}
	})
	return testStore{
		services:    repository.NewServiceRepository(db),
		results:     repository.NewCheckResultRepository(db),
		incidents:   repository.NewIncidentRepository(db),
		maintenance: repository.NewMaintenanceRepository(db),
	}
}

func (s testStore) statusService(now time.Time) *statusService {
	svc := NewStatusService(s.services, s.results, s.incidents, s.maintenance, 5000).(*statusService)
	svc.now = func() time.Time { return now }
	return svc
}

func (s testStore) historyService(now time.Time) *historyService {
	svc := NewHistoryService(s.services, s.results).(*historyService)
	svc.now = func() time.Time { return now }
	return svc
}

func (s testStore) maintenanceService(now time.Time) *maintenanceService {
	svc := NewMaintenanceService(s.maintenance, zap.NewNop()).(*maintenanceService)
	svc.now = func() time.Time { return now }
	return svc
}

func (s testStore) addServices(t *testing.T, services ...model.Service) {
	require.NoError(t, s.services.UpsertServices(context.Background(), services))
}

func (s testStore) addResult(t *testing.T, serviceID string, status model.Status, checkedAt time.Time, responseTimeMs *int64) {
	require.NoError(t, s.results.CreateCheckResult(context.Background(), &model.CheckResult{
		ServiceID:      serviceID,
		Status:         status,
		ResponseTimeMs: responseTimeMs,
		CheckedAt:      checkedAt,
	}))
}

func ptr[T any](v T) *T {
	return &v
}
