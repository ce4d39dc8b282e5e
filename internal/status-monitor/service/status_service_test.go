package service

import (
	"VCS_Status_Monitor/internal/status-monitor/config"
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryView struct {
	Name     string
	Status   model.Status
	Services []string
	Statuses []model.Status
}

func viewCategories(categories []model.CategoryStatus) []categoryView {
	out := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		v := categoryView{Name: c.Name, Status: c.Status}
		for _, s := range c.Services {
			v.Services = append(v.Services, s.Service.ID)
			v.Statuses = append(v.Statuses, s.Status)
		}
		out = append(out, v)
	}
	return out
}

func TestStatusService_GetStatusSummary(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	store.addServices(t,
		model.Service{ID: "web", Name: "Website", Category: "Core", URL: ptr("http://web")},
		model.Service{ID: "api", Name: "API", Category: "Core", URL: ptr("http://api")},
		model.Service{ID: "db", Name: "Database", Category: "Data", URL: ptr("http://db")},
		model.Service{ID: "docs", Name: "Docs", Category: "Apps"},
	)
	store.addResult(t, "api", model.StatusMajorOutage, baseTime.Add(-2*time.Minute), nil)
	store.addResult(t, "api", model.StatusOperational, baseTime.Add(-time.Minute), ptr(int64(80)))
	store.addResult(t, "web", model.StatusOperational, baseTime.Add(-3*time.Minute), ptr(int64(40)))
	store.addResult(t, "web", model.StatusDegraded, baseTime.Add(-30*time.Second), ptr(int64(2500)))
	store.addResult(t, "db", model.StatusOperational, baseTime.Add(-time.Minute), ptr(int64(5)))

	incidents := NewIncidentService(store.incidents)
	_, err := incidents.CreateIncident(ctx, model.Incident{Title: "DB down", Impact: model.IncidentImpactCritical, AffectedServices: []string{"db", "ghost"}})
	require.NoError(t, err)
	resolved, err := incidents.CreateIncident(ctx, model.Incident{Title: "API slow", Impact: model.IncidentImpactMajor, AffectedServices: []string{"api"}})
	require.NoError(t, err)
	_, err = incidents.UpdateIncident(ctx, resolved.ID, "fixed", model.IncidentStatusResolved)
	require.NoError(t, err)

	maintenance := store.maintenanceService(baseTime)
	_, err = maintenance.CreateMaintenance(ctx, model.MaintenanceWindow{
		Title: "Docs migration", ScheduledStart: baseTime.Add(-time.Hour), ScheduledEnd: baseTime.Add(time.Hour),
		Status: model.MaintenanceStatusInProgress, AffectedServices: []string{"docs"},
	})
	require.NoError(t, err)
	_, err = maintenance.CreateMaintenance(ctx, model.MaintenanceWindow{
		Title: "API upgrade", ScheduledStart: baseTime.Add(time.Hour), ScheduledEnd: baseTime.Add(2 * time.Hour),
		AffectedServices: []string{"api"},
	})
	require.NoError(t, err)
	_, err = maintenance.CreateMaintenance(ctx, model.MaintenanceWindow{
		Title: "Old", ScheduledStart: baseTime.Add(-48 * time.Hour), ScheduledEnd: baseTime.Add(-47 * time.Hour),
		Status: model.MaintenanceStatusCompleted, AffectedServices: []string{"web"},
	})
	require.NoError(t, err)

	summary, err := store.statusService(baseTime).GetStatusSummary(ctx)
	require.NoError(t, err)

	expected := []categoryView{
		{Name: "Apps", Status: model.StatusMaintenance, Services: []string{"docs"}, Statuses: []model.Status{model.StatusMaintenance}},
		{Name: "Core", Status: model.StatusDegraded, Services: []string{"api", "web"}, Statuses: []model.Status{model.StatusOperational, model.StatusDegraded}},
		{Name: "Data", Status: model.StatusMajorOutage, Services: []string{"db"}, Statuses: []model.Status{model.StatusMajorOutage}},
	}
	if diff := cmp.Diff(expected, viewCategories(summary.Categories)); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.StatusMajorOutage, summary.Overall)
	require.Len(t, summary.Incidents, 1)
	assert.Equal(t, "DB down", summary.Incidents[0].Title)
	require.Len(t, summary.Maintenance, 2)
	assert.Equal(t, "Docs migration", summary.Maintenance[0].Title)
	assert.Equal(t, "API upgrade", summary.Maintenance[1].Title)
	require.NotNil(t, summary.LastUpdated)
	assert.Equal(t, baseTime.Add(-30*time.Second), *summary.LastUpdated)

	web := summary.Categories[1].Services[1]
	assert.Equal(t, ptr(int64(2500)), web.ResponseTimeMs)
	docs := summary.Categories[0].Services[0]
	assert.Nil(t, docs.LastCheckedAt)

	again, err := store.statusService(baseTime).GetStatusSummary(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(viewCategories(summary.Categories), viewCategories(again.Categories)))
}

func TestStatusService_GetStatusSummary_Empty(t *testing.T) {
	store := setupStore(t)
	summary, err := store.statusService(baseTime).GetStatusSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.StatusOperational, summary.Overall)
	assert.Empty(t, summary.Categories)
	assert.Empty(t, summary.Incidents)
	assert.Empty(t, summary.Maintenance)
	assert.Nil(t, summary.LastUpdated)
}

func TestStatusService_GetStats(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	store.addServices(t,
		model.Service{ID: "api", Name: "API", Category: "Core"},
		model.Service{ID: "web", Name: "Web", Category: "Core"},
	)
	store.addResult(t, "api", model.StatusOperational, baseTime.Add(-time.Hour), ptr(int64(100)))
	store.addResult(t, "api", model.StatusOperational, baseTime.Add(-2*time.Hour), ptr(int64(200)))
	store.addResult(t, "api", model.StatusDegraded, baseTime.Add(-3*time.Hour), ptr(int64(300)))
	store.addResult(t, "api", model.StatusMajorOutage, baseTime.Add(-25*time.Hour), nil)
	store.addResult(t, "api", model.StatusPartialOutage, baseTime.AddDate(0, 0, -40), ptr(int64(500)))
	store.addResult(t, "api", model.StatusMajorOutage, baseTime.AddDate(0, 0, -100), nil)
	store.addResult(t, "web", model.StatusMajorOutage, baseTime.Add(-time.Minute), ptr(int64(1000)))

	testCases := []struct {
		name      string
		serviceID string
		days      int
		expected  model.Stats
		expectErr error
	}{
		{
			name:      "Default ninety days",
			serviceID: "api",
			expected: model.Stats{
				ServiceID: "api", Days: 90, Uptime: 56, AvgResponseTimeMs: 200,
				IncidentCount: 1, TotalChecks: 5, CurrentStatus: model.StatusOperational,
			},
		},
		{
			name:      "Longer window includes older rows",
			serviceID: "api",
			days:      365,
			expected: model.Stats{
				ServiceID: "api", Days: 365, Uptime: 46.67, AvgResponseTimeMs: 200,
				IncidentCount: 1, TotalChecks: 6, CurrentStatus: model.StatusOperational,
			},
		},
		{
			name:      "Days clamped",
			serviceID: "api",
			days:      1000,
			expected: model.Stats{
				ServiceID: "api", Days: 365, Uptime: 46.67, AvgResponseTimeMs: 200,
				IncidentCount: 1, TotalChecks: 6, CurrentStatus: model.StatusOperational,
			},
		},
		{
			name: "All services",
			days: 1,
			expected: model.Stats{
				Days: 1, Uptime: 70, AvgResponseTimeMs: 400,
				IncidentCount: 2, TotalChecks: 4, CurrentStatus: model.StatusMajorOutage,
			},
		},
		{
			name:      "Unknown service",
			serviceID: "ghost",
			expectErr: apperrors.ErrServiceNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := store.statusService(baseTime).GetStats(ctx, tc.serviceID, tc.days)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stats)
		})
	}
}

func TestStatusService_GetStats_NoData(t *testing.T) {
	store := setupStore(t)
	store.addServices(t, model.Service{ID: "api", Name: "API", Category: "Core"})
	stats, err := store.statusService(baseTime).GetStats(context.Background(), "api", 0)
	require.NoError(t, err)
	assert.Equal(t, float64(100), stats.Uptime)
	assert.Equal(t, float64(0), stats.AvgResponseTimeMs)
	assert.Equal(t, int64(0), stats.TotalChecks)
	assert.Equal(t, model.StatusOperational, stats.CurrentStatus)
}

func TestStatusService_RegisterServices(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	svc := store.statusService(baseTime)

	err := svc.RegisterServices(ctx, []config.ServiceDefinition{
		{ID: "api", Name: "API", Category: "Core", URL: ptr("http://api/health")},
		{ID: "docs", Name: "Docs", Category: "Apps", TimeoutMs: 1000, ExpectedStatusCode: 204},
	})
	require.NoError(t, err)

	services, err := svc.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "docs", services[0].ID)
	assert.Equal(t, 1000, services[0].TimeoutMs)
	assert.Equal(t, 204, services[0].ExpectedStatusCode)
	assert.False(t, services[0].Probeable())
	assert.Equal(t, "api", services[1].ID)
	assert.Equal(t, 5000, services[1].TimeoutMs)
	assert.Equal(t, model.DefaultExpectedStatusCode, services[1].ExpectedStatusCode)

	err = svc.RegisterServices(ctx, []config.ServiceDefinition{{ID: "api", Name: "Public API", Category: "Core"}})
	require.NoError(t, err)
	api, err := store.services.GetServiceByID(ctx, "api")
	require.NoError(t, err)
	assert.Equal(t, "Public API", api.Name)
	assert.Nil(t, api.URL)
}

func TestStatusService_GetRecentChecks(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	store.addServices(t, model.Service{ID: "api", Name: "API", Category: "Core"})
	for i := 0; i < 5; i++ {
		store.addResult(t, "api", model.StatusOperational, baseTime.Add(time.Duration(i)*time.Minute), ptr(int64(i)))
	}
	svc := store.statusService(baseTime)

	results, err := svc.GetRecentChecks(ctx, "api", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, ptr(int64(4)), results[0].ResponseTimeMs)
	assert.Equal(t, ptr(int64(2)), results[2].ResponseTimeMs)

	_, err = svc.GetRecentChecks(ctx, "ghost", 3)
	assert.ErrorIs(t, err, apperrors.ErrServiceNotFound)
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 90, ClampDays(0, 90))
	assert.Equal(t, 90, ClampDays(-3, 90))
	assert.Equal(t, 1, ClampDays(1, 90))
	assert.Equal(t, 365, ClampDays(365, 90))
	assert.Equal(t, 365, ClampDays(366, 90))
}
