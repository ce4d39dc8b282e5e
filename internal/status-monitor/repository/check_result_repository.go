package repository

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=check_result_repository.go -destination=../mocks/repository/check_result_repository_mock.go -package=mockrepository

// CheckResultFilter selects check results. An empty ServiceID matches every service;
// zero From/To leave that side of the window open. To is exclusive.
type CheckResultFilter struct {
	ServiceID string
	From      time.Time
	To        time.Time
}

type CheckResultRepository interface {
	CreateCheckResult(ctx context.Context, result *model.CheckResult) error
	GetRecentByService(ctx context.Context, serviceID string, limit int) ([]model.CheckResult, error)
	GetLatestPerService(ctx context.Context) ([]model.CheckResult, error)
	GetCheckResults(ctx context.Context, filter CheckResultFilter) ([]model.CheckResult, error)
	CountByStatus(ctx context.Context, filter CheckResultFilter) (model.StatusCounts, error)
	AverageResponseTime(ctx context.Context, filter CheckResultFilter) (float64, error)
	PruneToMostRecent(ctx context.Context, keep int) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type checkResultRepository struct {
	db *gorm.DB
}

func (r *checkResultRepository) applyFilter(query *gorm.DB, filter CheckResultFilter) *gorm.DB {
	if filter.ServiceID != "" {
		query = query.Where("service_id = ?", filter.ServiceID)
	}
	if !filter.From.IsZero() {
		query = query.Where("checked_at >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query = query.Where("checked_at < ?", filter.To.UTC())
	}
	return query
}

func (r *checkResultRepository) CreateCheckResult(ctx context.Context, result *model.CheckResult) error {
	result.CheckedAt = result.CheckedAt.UTC()
	res := r.db.WithContext(ctx).Create(result)
	if res.Error != nil {
		return fmt.Errorf("CheckResultRepository.CreateCheckResult: %w", res.Error)
	}
	return nil
}

func (r *checkResultRepository) GetRecentByService(ctx context.Context, serviceID string, limit int) ([]model.CheckResult, error) {
	var results []model.CheckResult
	res := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("checked_at DESC, id DESC").
		Limit(limit).
		Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetRecentByService: %w", res.Error)
	}
	return results, nil
}

// GetLatestPerService returns the most recent check result of every service that has one.
func (r *checkResultRepository) GetLatestPerService(ctx context.Context) ([]model.CheckResult, error) {
	latest := r.db.Model(&model.CheckResult{}).
		Select("service_id, MAX(checked_at) AS max_checked_at").
		Group("service_id")
	var rows []model.CheckResult
	res := r.db.WithContext(ctx).
		Table("check_results AS cr").
		Select("cr.*").
		Joins("JOIN (?) AS latest ON cr.service_id = latest.service_id AND cr.checked_at = latest.max_checked_at", latest).
		Order("cr.service_id ASC, cr.id DESC").
		Find(&rows)
	if res.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetLatestPerService: %w", res.Error)
	}
	// rows sharing the same checked_at: keep the highest id
	results := make([]model.CheckResult, 0, len(rows))
	for _, row := range rows {
		if n := len(results); n > 0 && results[n-1].ServiceID == row.ServiceID {
			continue
		}
		results = append(results, row)
	}
	return results, nil
}

func (r *checkResultRepository) GetCheckResults(ctx context.Context, filter CheckResultFilter) ([]model.CheckResult, error) {
	var results []model.CheckResult
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	res := query.Order("checked_at ASC, id ASC").Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("CheckResultRepository.GetCheckResults: %w", res.Error)
	}
	return results, nil
}

func (r *checkResultRepository) CountByStatus(ctx context.Context, filter CheckResultFilter) (model.StatusCounts, error) {
	var rows []struct {
		Status model.Status
		Count  int64
	}
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.CheckResult{}), filter)
	res := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows)
	var counts model.StatusCounts
	if res.Error != nil {
		return counts, fmt.Errorf("CheckResultRepository.CountByStatus: %w", res.Error)
	}
	for _, row := range rows {
		counts.Add(row.Status, row.Count)
	}
	return counts, nil
}

// AverageResponseTime is the mean of the non-null response times in the window, 0 without data.
func (r *checkResultRepository) AverageResponseTime(ctx context.Context, filter CheckResultFilter) (float64, error) {
	var avg sql.NullFloat64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.CheckResult{}), filter)
	res := query.Where("response_time_ms IS NOT NULL").Select("AVG(response_time_ms)").Scan(&avg)
	if res.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.AverageResponseTime: %w", res.Error)
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// PruneToMostRecent deletes everything but the keep most recent rows across all services.
func (r *checkResultRepository) PruneToMostRecent(ctx context.Context, keep int) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.CheckResult{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("CheckResultRepository.PruneToMostRecent: %w", err)
	}
	if total <= int64(keep) {
		return 0, nil
	}
	newest := r.db.Model(&model.CheckResult{}).Select("id").Order("checked_at DESC, id DESC").Limit(keep)
	res := r.db.WithContext(ctx).Where("id NOT IN (?)", newest).Delete(&model.CheckResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.PruneToMostRecent: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *checkResultRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("checked_at < ?", cutoff.UTC()).Delete(&model.CheckResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("CheckResultRepository.DeleteOlderThan: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func NewCheckResultRepository(db *gorm.DB) CheckResultRepository {
	return &checkResultRepository{
		db: db,
	}
}
