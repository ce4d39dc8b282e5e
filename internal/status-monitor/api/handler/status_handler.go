package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=status_handler.go -destination=../../mocks/api/handler/status_handler_mock.go -package=mockhandler

type StatusHandler interface {
	GetStatus() gin.HandlerFunc
	ListServices() gin.HandlerFunc
	GetServiceChecks() gin.HandlerFunc
	GetServiceUptime() gin.HandlerFunc
	GetStats() gin.HandlerFunc
	GetServiceStats() gin.HandlerFunc
}

type statusHandler struct {
	logger         Logger
	statusService  service.StatusService
	historyService service.HistoryService
}

func (h *statusHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := h.statusService.GetStatusSummary(c)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.GetStatus: %w", err), "failed to get status summary")
			return
		}
		c.JSON(http.StatusOK, response.NewStatusResponse(summary))
	}
}

func (h *statusHandler) ListServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		services, err := h.statusService.ListServices(c)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.ListServices: %w", err), "failed to list services")
			return
		}
		res := make([]response.ServiceResponse, 0, len(services))
		for _, s := range services {
			res = append(res, response.NewServiceResponse(s))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *statusHandler) GetServiceChecks() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		limit, ok := queryLimit(c, DefaultCheckLimit, MaxCheckLimit)
		if !ok {
			return
		}
		results, err := h.statusService.GetRecentChecks(c, id, limit)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.GetServiceChecks: %w", err), fmt.Sprintf("failed to get checks of service %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewCheckResultResponses(results))
	}
}

func (h *statusHandler) GetServiceUptime() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		days, ok := queryDays(c)
		if !ok {
			return
		}
		timeline, err := h.historyService.GetTimeline(c, id, days)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.GetServiceUptime: %w", err), fmt.Sprintf("failed to get uptime of service %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewUptimeDayResponses(timeline))
	}
}

func (h *statusHandler) GetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		days, ok := queryDays(c)
		if !ok {
			return
		}
		stats, err := h.statusService.GetStats(c, "", days)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.GetStats: %w", err), "failed to get stats")
			return
		}
		c.JSON(http.StatusOK, response.NewStatsResponse(stats))
	}
}

func (h *statusHandler) GetServiceStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("serviceId")
		days, ok := queryDays(c)
		if !ok {
			return
		}
		stats, err := h.statusService.GetStats(c, id, days)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("StatusHandler.GetServiceStats: %w", err), fmt.Sprintf("failed to get stats of service %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewStatsResponse(stats))
	}
}

func NewStatusHandler(logger Logger, statusService service.StatusService, historyService service.HistoryService) StatusHandler {
	return &statusHandler{
		logger:         logger,
		statusService:  statusService,
		historyService: historyService,
	}
}
