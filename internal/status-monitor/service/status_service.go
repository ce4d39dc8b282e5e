package service

import (
	"VCS_Status_Monitor/internal/status-monitor/config"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"fmt"
	"sort"
	"time"
)

const (
	DefaultStatsDays = 90
	MaxDays          = 365

	averageResponseWindow = 24 * time.Hour
	incidentCountWindow   = 30 * 24 * time.Hour
)

//go:generate mockgen -source=status_service.go -destination=../mocks/service/status_service_mock.go -package=mockservice

type StatusService interface {
	RegisterServices(ctx context.Context, definitions []config.ServiceDefinition) error
	ListServices(ctx context.Context) ([]model.Service, error)
	GetStatusSummary(ctx context.Context) (model.StatusSummary, error)
	// GetStats aggregates over every service when serviceID is empty.
	GetStats(ctx context.Context, serviceID string, days int) (model.Stats, error)
	GetRecentChecks(ctx context.Context, serviceID string, limit int) ([]model.CheckResult, error)
}

type statusService struct {
	serviceRepo      repository.ServiceRepository
	resultRepo       repository.CheckResultRepository
	incidentRepo     repository.IncidentRepository
	maintenanceRepo  repository.MaintenanceRepository
	defaultTimeoutMs int
	now              func() time.Time
}

func (s *statusService) RegisterServices(ctx context.Context, definitions []config.ServiceDefinition) error {
	services := make([]model.Service, 0, len(definitions))
	for _, def := range definitions {
		svc := model.Service{
			ID:                   def.ID,
			Name:                 def.Name,
			Description:          def.Description,
			URL:                  def.URL,
			Category:             def.Category,
			CheckIntervalSeconds: def.CheckIntervalSeconds,
			TimeoutMs:            def.TimeoutMs,
			ExpectedStatusCode:   def.ExpectedStatusCode,
		}
		if svc.TimeoutMs <= 0 {
			svc.TimeoutMs = s.defaultTimeoutMs
		}
		if svc.ExpectedStatusCode == 0 {
			svc.ExpectedStatusCode = model.DefaultExpectedStatusCode
		}
		services = append(services, svc)
	}
	if err := s.serviceRepo.UpsertServices(ctx, services); err != nil {
		return fmt.Errorf("StatusService.RegisterServices: %w", err)
	}
	return nil
}

func (s *statusService) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("StatusService.ListServices: %w", err)
	}
	return services, nil
}

func (s *statusService) GetRecentChecks(ctx context.Context, serviceID string, limit int) ([]model.CheckResult, error) {
	if _, err := s.serviceRepo.GetServiceByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("StatusService.GetRecentChecks: %w", err)
	}
	results, err := s.resultRepo.GetRecentByService(ctx, serviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("StatusService.GetRecentChecks: %w", err)
	}
	return results, nil
}

// serviceStates is the effective view of every registered service plus the records that shaped it.
type serviceStates struct {
	states      []model.ServiceState
	incidents   []model.Incident
	maintenance []model.MaintenanceWindow
	lastUpdated *time.Time
}

func (s *statusService) loadStates(ctx context.Context) (serviceStates, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return serviceStates{}, err
	}
	latest, err := s.resultRepo.GetLatestPerService(ctx)
	if err != nil {
		return serviceStates{}, err
	}
	incidents, err := s.incidentRepo.ListIncidents(ctx, repository.IncidentFilter{Status: repository.IncidentFilterActive})
	if err != nil {
		return serviceStates{}, err
	}
	windows, err := s.maintenanceRepo.ListMaintenance(ctx, "")
	if err != nil {
		return serviceStates{}, err
	}

	latestByService := make(map[string]model.CheckResult, len(latest))
	for _, r := range latest {
		latestByService[r.ServiceID] = r
	}
	overrides := make(map[string]model.Status)
	for _, incident := range incidents {
		for _, id := range incident.AffectedServices {
			overrides[id] = model.MoreSevere(overrides[id], incident.Impact.ServiceStatus())
		}
	}
	var upcoming []model.MaintenanceWindow
	for _, w := range windows {
		if w.Status == model.MaintenanceStatusCompleted {
			continue
		}
		upcoming = append(upcoming, w)
		if w.Status != model.MaintenanceStatusInProgress {
			continue
		}
		for _, id := range w.AffectedServices {
			overrides[id] = model.MoreSevere(overrides[id], model.StatusMaintenance)
		}
	}

	out := serviceStates{
		states:      make([]model.ServiceState, 0, len(services)),
		incidents:   incidents,
		maintenance: upcoming,
	}
	for _, svc := range services {
		state := model.ServiceState{
			Service: svc,
			Status:  model.StatusOperational,
		}
		if r, ok := latestByService[svc.ID]; ok {
			checkedAt := r.CheckedAt.UTC()
			state.Status = r.Status
			state.ResponseTimeMs = r.ResponseTimeMs
			state.LastCheckedAt = &checkedAt
			if out.lastUpdated == nil || checkedAt.After(*out.lastUpdated) {
				out.lastUpdated = &checkedAt
			}
		}
		if override, ok := overrides[svc.ID]; ok {
			state.Status = model.MoreSevere(state.Status, override)
		}
		out.states = append(out.states, state)
	}
	return out, nil
}

func (s *statusService) GetStatusSummary(ctx context.Context) (model.StatusSummary, error) {
	loaded, err := s.loadStates(ctx)
	if err != nil {
		return model.StatusSummary{}, fmt.Errorf("StatusService.GetStatusSummary: %w", err)
	}

	byCategory := make(map[string]*model.CategoryStatus)
	overall := model.StatusOperational
	for _, state := range loaded.states {
		category, ok := byCategory[state.Service.Category]
		if !ok {
			category = &model.CategoryStatus{Name: state.Service.Category, Status: model.StatusOperational}
			byCategory[state.Service.Category] = category
		}
		category.Services = append(category.Services, state)
		category.Status = model.MoreSevere(category.Status, state.Status)
		overall = model.MoreSevere(overall, state.Status)
	}

	categories := make([]model.CategoryStatus, 0, len(byCategory))
	for _, category := range byCategory {
		sort.SliceStable(category.Services, func(i, j int) bool {
			a, b := category.Services[i].Service, category.Services[j].Service
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		})
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return model.StatusSummary{
		Overall:     overall,
		Categories:  categories,
		Incidents:   loaded.incidents,
		Maintenance: loaded.maintenance,
		LastUpdated: loaded.lastUpdated,
	}, nil
}

func (s *statusService) GetStats(ctx context.Context, serviceID string, days int) (model.Stats, error) {
	if serviceID != "" {
		if _, err := s.serviceRepo.GetServiceByID(ctx, serviceID); err != nil {
			return model.Stats{}, fmt.Errorf("StatusService.GetStats: %w", err)
		}
	}
	days = ClampDays(days, DefaultStatsDays)
	now := s.now()

	counts, err := s.resultRepo.CountByStatus(ctx, repository.CheckResultFilter{
		ServiceID: serviceID,
		From:      now.AddDate(0, 0, -days),
	})
	if err != nil {
		return model.Stats{}, fmt.Errorf("StatusService.GetStats: %w", err)
	}
	avg, err := s.resultRepo.AverageResponseTime(ctx, repository.CheckResultFilter{
		ServiceID: serviceID,
		From:      now.Add(-averageResponseWindow),
	})
	if err != nil {
		return model.Stats{}, fmt.Errorf("StatusService.GetStats: %w", err)
	}
	recent, err := s.resultRepo.CountByStatus(ctx, repository.CheckResultFilter{
		ServiceID: serviceID,
		From:      now.Add(-incidentCountWindow),
	})
	if err != nil {
		return model.Stats{}, fmt.Errorf("StatusService.GetStats: %w", err)
	}
	loaded, err := s.loadStates(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("StatusService.GetStats: %w", err)
	}
	current := model.StatusOperational
	for _, state := range loaded.states {
		if serviceID == "" || state.Service.ID == serviceID {
			current = model.MoreSevere(current, state.Status)
		}
	}

	return model.Stats{
		ServiceID:         serviceID,
		Days:              days,
		Uptime:            counts.Uptime(),
		AvgResponseTimeMs: model.RoundTo2(avg),
		IncidentCount:     recent.Outages(),
		TotalChecks:       counts.Total(),
		CurrentStatus:     current,
	}, nil
}

// ClampDays applies def to non-positive values and caps the result at MaxDays.
func ClampDays(days int, def int) int {
	if days <= 0 {
		return def
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func NewStatusService(serviceRepo repository.ServiceRepository, resultRepo repository.CheckResultRepository, incidentRepo repository.IncidentRepository, maintenanceRepo repository.MaintenanceRepository, defaultTimeoutMs int) StatusService {
	return &statusService{
		serviceRepo:      serviceRepo,
		resultRepo:       resultRepo,
		incidentRepo:     incidentRepo,
		maintenanceRepo:  maintenanceRepo,
		defaultTimeoutMs: defaultTimeoutMs,
		now:              utcNow,
	}
}
