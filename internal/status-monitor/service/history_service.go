package service

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"fmt"
	"sort"
	"time"
)

// AllServices selects every service in timeline queries.
const AllServices = "all"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=history_service.go -destination=../mocks/service/history_service_mock.go -package=mockservice

type HistoryService interface {
	// GetTimeline returns one row per UTC day with data, oldest first. serviceID may be AllServices.
	GetTimeline(ctx context.Context, serviceID string, days int) ([]model.DayStatus, error)
}

type historyService struct {
	serviceRepo repository.ServiceRepository
	resultRepo  repository.CheckResultRepository
	now         func() time.Time
}

type dayBucket struct {
	counts      model.StatusCounts
	responseSum int64
	responseCnt int64
}

func (h *historyService) GetTimeline(ctx context.Context, serviceID string, days int) ([]model.DayStatus, error) {
	if serviceID == AllServices {
		serviceID = ""
	}
	if serviceID != "" {
		if _, err := h.serviceRepo.GetServiceByID(ctx, serviceID); err != nil {
			return nil, fmt.Errorf("HistoryService.GetTimeline: %w", err)
		}
	}
	days = ClampDays(days, DefaultStatsDays)
	now := h.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	results, err := h.resultRepo.GetCheckResults(ctx, repository.CheckResultFilter{
		ServiceID: serviceID,
		From:      today.AddDate(0, 0, -(days - 1)),
	})
	if err != nil {
		return nil, fmt.Errorf("HistoryService.GetTimeline: %w", err)
	}
	if len(results) == 0 {
		return []model.DayStatus{{
			Date:   today.Format(dateLayout),
			Status: model.StatusOperational,
			Uptime: 100,
		}}, nil
	}

	buckets := make(map[string]*dayBucket)
	for _, r := range results {
		date := r.CheckedAt.UTC().Format(dateLayout)
		b, ok := buckets[date]
		if !ok {
			b = &dayBucket{}
			buckets[date] = b
		}
		b.counts.Add(r.Status, 1)
		if r.ResponseTimeMs != nil {
			b.responseSum += *r.ResponseTimeMs
			b.responseCnt++
		}
	}

	timeline := make([]model.DayStatus, 0, len(buckets))
	for date, b := range buckets {
		var avg float64
		if b.responseCnt > 0 {
			avg = model.RoundTo2(float64(b.responseSum) / float64(b.responseCnt))
		}
		timeline = append(timeline, model.DayStatus{
			Date:           date,
			Status:         b.counts.DailyStatus(),
			Uptime:         b.counts.Uptime(),
			Incidents:      b.counts.Outages(),
			ResponseTimeMs: avg,
			TotalChecks:    b.counts.Total(),
		})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})
	return timeline, nil
}

func NewHistoryService(serviceRepo repository.ServiceRepository, resultRepo repository.CheckResultRepository) HistoryService {
	return &historyService{
		serviceRepo: serviceRepo,
		resultRepo:  resultRepo,
		now:         utcNow,
	}
}
