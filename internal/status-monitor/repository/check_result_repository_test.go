package repository

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCheckResults(t *testing.T, repo CheckResultRepository, results ...model.CheckResult) {
	for i := range results {
		require.NoError(t, repo.CreateCheckResult(context.Background(), &results[i]))
	}
}

func check(serviceID string, status model.Status, at time.Time, responseTimeMs *int64) model.CheckResult {
	return model.CheckResult{
		ServiceID:      serviceID,
		Status:         status,
		ResponseTimeMs: responseTimeMs,
		CheckedAt:      at,
	}
}

func TestCheckResultRepository_CreateCheckResult(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	result := model.CheckResult{
		ServiceID:      "api",
		Status:         model.StatusMajorOutage,
		ResponseTimeMs: ptr(int64(5001)),
		ErrorMessage:   ptr("context deadline exceeded"),
		CheckedAt:      baseTime.In(time.FixedZone("UTC+7", 7*3600)),
	}
	require.NoError(t, repo.CreateCheckResult(context.Background(), &result))
	assert.NotZero(t, result.ID)

	stored, err := repo.GetRecentByService(context.Background(), "api", 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, model.StatusMajorOutage, stored[0].Status)
	assert.Nil(t, stored[0].StatusCode)
	assert.Equal(t, "context deadline exceeded", *stored[0].ErrorMessage)
	assert.True(t, stored[0].CheckedAt.Equal(baseTime))
}

func TestCheckResultRepository_GetRecentByService(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	seedCheckResults(t, repo,
		check("api", model.StatusOperational, baseTime, nil),
		check("api", model.StatusDegraded, baseTime.Add(2*time.Minute), nil),
		check("web", model.StatusMajorOutage, baseTime.Add(3*time.Minute), nil),
		check("api", model.StatusMajorOutage, baseTime.Add(time.Minute), nil),
	)

	results, err := repo.GetRecentByService(context.Background(), "api", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, model.StatusDegraded, results[0].Status)
	assert.Equal(t, model.StatusMajorOutage, results[1].Status)
}

func TestCheckResultRepository_GetLatestPerService(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	seedCheckResults(t, repo,
		check("api", model.StatusMajorOutage, baseTime, nil),
		check("api", model.StatusOperational, baseTime.Add(5*time.Second), nil),
		check("web", model.StatusDegraded, baseTime.Add(10*time.Second), nil),
		check("web", model.StatusPartialOutage, baseTime.Add(time.Second), nil),
		check("db", model.StatusOperational, baseTime, nil),
		check("db", model.StatusMajorOutage, baseTime, nil),
	)

	results, err := repo.GetLatestPerService(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	byService := make(map[string]model.Status)
	for _, r := range results {
		byService[r.ServiceID] = r.Status
	}
	assert.Equal(t, map[string]model.Status{
		"api": model.StatusOperational,
		"web": model.StatusDegraded,
		"db":  model.StatusMajorOutage,
	}, byService)
}

func TestCheckResultRepository_CountByStatus(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	var seed []model.CheckResult
	for i := 0; i < 8; i++ {
		seed = append(seed, check("api", model.StatusOperational, baseTime.Add(time.Duration(i)*time.Minute), nil))
	}
	seed = append(seed,
		check("api", model.StatusDegraded, baseTime.Add(10*time.Minute), nil),
		check("api", model.StatusMajorOutage, baseTime.Add(11*time.Minute), nil),
		check("api", model.StatusMajorOutage, baseTime.Add(-48*time.Hour), nil),
		check("web", model.StatusPartialOutage, baseTime, nil),
	)
	seedCheckResults(t, repo, seed...)

	testCases := []struct {
		name     string
		filter   CheckResultFilter
		expected model.StatusCounts
	}{
		{
			name:     "one service inside window",
			filter:   CheckResultFilter{ServiceID: "api", From: baseTime.Add(-time.Hour), To: baseTime.Add(time.Hour)},
			expected: model.StatusCounts{Operational: 8, Degraded: 1, MajorOutage: 1},
		},
		{
			name:     "all services open window",
			filter:   CheckResultFilter{},
			expected: model.StatusCounts{Operational: 8, Degraded: 1, MajorOutage: 2, PartialOutage: 1},
		},
		{
			name:     "to is exclusive",
			filter:   CheckResultFilter{ServiceID: "api", From: baseTime, To: baseTime.Add(time.Minute)},
			expected: model.StatusCounts{Operational: 1},
		},
		{
			name:   "no rows",
			filter: CheckResultFilter{ServiceID: "missing"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counts, err := repo.CountByStatus(context.Background(), tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, counts)
		})
	}
}

func TestCheckResultRepository_AverageResponseTime(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	seedCheckResults(t, repo,
		check("api", model.StatusOperational, baseTime, ptr(int64(100))),
		check("api", model.StatusOperational, baseTime.Add(time.Minute), ptr(int64(200))),
		check("api", model.StatusMajorOutage, baseTime.Add(2*time.Minute), nil),
		check("web", model.StatusOperational, baseTime, ptr(int64(900))),
	)

	avg, err := repo.AverageResponseTime(context.Background(), CheckResultFilter{ServiceID: "api"})
	require.NoError(t, err)
	assert.InDelta(t, 150, avg, 0.001)

	avg, err = repo.AverageResponseTime(context.Background(), CheckResultFilter{})
	require.NoError(t, err)
	assert.InDelta(t, 400, avg, 0.001)

	avg, err = repo.AverageResponseTime(context.Background(), CheckResultFilter{ServiceID: "missing"})
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestCheckResultRepository_PruneToMostRecent(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	var seed []model.CheckResult
	for i := 0; i < 10; i++ {
		serviceID := "api"
		if i%2 == 1 {
			serviceID = "web"
		}
		seed = append(seed, check(serviceID, model.StatusOperational, baseTime.Add(time.Duration(i)*time.Second), nil))
	}
	seedCheckResults(t, repo, seed...)

	deleted, err := repo.PruneToMostRecent(context.Background(), 20)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.PruneToMostRecent(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), deleted)

	remaining, err := repo.GetCheckResults(context.Background(), CheckResultFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 4)
	for i, r := range remaining {
		assert.True(t, r.CheckedAt.Equal(baseTime.Add(time.Duration(6+i)*time.Second)))
	}
}

func TestCheckResultRepository_DeleteOlderThan(t *testing.T) {
	repo := NewCheckResultRepository(setupSQLiteDB(t))
	seedCheckResults(t, repo,
		check("api", model.StatusOperational, baseTime.AddDate(0, 0, -91), nil),
		check("api", model.StatusOperational, baseTime.AddDate(0, 0, -89), nil),
		check("web", model.StatusOperational, baseTime.AddDate(0, 0, -100), nil),
	)

	deleted, err := repo.DeleteOlderThan(context.Background(), baseTime.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.GetCheckResults(context.Background(), CheckResultFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
