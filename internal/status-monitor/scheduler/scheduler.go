package scheduler

import (
	"VCS_Status_Monitor/internal/status-monitor/checker"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type CheckScheduler interface {
	Start()
	Stop()
	RunCycle(ctx context.Context)
}

type checkScheduler struct {
	interval    time.Duration
	maxResults  int
	logger      *zap.Logger
	serviceRepo repository.ServiceRepository
	resultRepo  repository.CheckResultRepository
	checker     checker.Checker

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// Start runs a cycle immediately and then once per interval until Stop is called.
func (s *checkScheduler) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		s.RunCycle(context.Background())
		for {
			select {
			case <-ticker.C:
				s.RunCycle(context.Background())
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop prevents new cycles and waits for the in-flight one. It must only be called after Start.
func (s *checkScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.done
}

func (s *checkScheduler) RunCycle(ctx context.Context) {
	start := time.Now()
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("failed to fetch services", zap.Error(fmt.Errorf("checkScheduler.RunCycle: %w", err)))
		return
	}

	var wg sync.WaitGroup
	checked := 0
	for _, service := range services {
		if !service.Probeable() {
			continue
		}
		checked++
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("health check panicked", zap.String("service_id", service.ID), zap.Any("panic", r))
				}
			}()
			if _, e := s.checker.Check(ctx, service); e != nil {
				s.logger.Error("failed to check service", zap.String("service_id", service.ID), zap.Error(fmt.Errorf("checkScheduler.RunCycle: %w", e)))
			}
		}()
	}
	wg.Wait()

	pruned, err := s.resultRepo.PruneToMostRecent(ctx, s.maxResults)
	if err != nil {
		s.logger.Error("failed to prune check results", zap.Error(fmt.Errorf("checkScheduler.RunCycle: %w", err)))
	}
	s.logger.Debug("check cycle finished",
		zap.Int("services_checked", checked),
		zap.Int64("results_pruned", pruned),
		zap.Duration("duration", time.Since(start)))
}

func NewCheckScheduler(interval time.Duration, maxResults int, logger *zap.Logger, serviceRepo repository.ServiceRepository, resultRepo repository.CheckResultRepository, checker checker.Checker) CheckScheduler {
	return &checkScheduler{
		interval:    interval,
		maxResults:  maxResults,
		logger:      logger,
		serviceRepo: serviceRepo,
		resultRepo:  resultRepo,
		checker:     checker,
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}
