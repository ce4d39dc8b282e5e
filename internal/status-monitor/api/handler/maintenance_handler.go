package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/request"
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=maintenance_handler.go -destination=../../mocks/api/handler/maintenance_handler_mock.go -package=mockhandler

type MaintenanceHandler interface {
	ListMaintenance() gin.HandlerFunc
	GetMaintenance() gin.HandlerFunc
	CreateMaintenance() gin.HandlerFunc
	UpdateMaintenance() gin.HandlerFunc
	DeleteMaintenance() gin.HandlerFunc
}

type maintenanceHandler struct {
	logger             Logger
	maintenanceService service.MaintenanceService
}

func (h *maintenanceHandler) ListMaintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := model.MaintenanceStatus(c.Query("status"))
		if status != "" && !status.IsValid() {
			abortWithError(c, http.StatusBadRequest, "Status must be one of: scheduled, in_progress, completed")
			return
		}
		windows, err := h.maintenanceService.ListMaintenance(c, status)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("MaintenanceHandler.ListMaintenance: %w", err), "failed to list maintenance windows")
			return
		}
		c.JSON(http.StatusOK, response.NewMaintenanceResponses(windows))
	}
}

func (h *maintenanceHandler) GetMaintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		window, err := h.maintenanceService.GetMaintenance(c, id)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("MaintenanceHandler.GetMaintenance: %w", err), fmt.Sprintf("failed to get maintenance window %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewMaintenanceResponse(window))
	}
}

func (h *maintenanceHandler) CreateMaintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateMaintenanceRequest
		if !bindJSON(c, &req) {
			return
		}
		window, err := h.maintenanceService.CreateMaintenance(c, model.MaintenanceWindow{
			Title:            req.Title,
			Description:      req.Description,
			ScheduledStart:   *req.ScheduledStart,
			ScheduledEnd:     *req.ScheduledEnd,
			Status:           model.MaintenanceStatus(req.Status),
			AffectedServices: req.AffectedServices,
		})
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("MaintenanceHandler.CreateMaintenance: %w", err), "failed to create maintenance window")
			return
		}
		c.JSON(http.StatusCreated, response.NewMaintenanceResponse(window))
	}
}

func (h *maintenanceHandler) UpdateMaintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateMaintenanceRequest
		if !bindJSON(c, &req) {
			return
		}
		patch := service.MaintenancePatch{
			Title:            req.Title,
			Description:      req.Description,
			ScheduledStart:   req.ScheduledStart,
			ScheduledEnd:     req.ScheduledEnd,
			AffectedServices: req.AffectedServices,
		}
		if req.Status != nil {
			status := model.MaintenanceStatus(*req.Status)
			patch.Status = &status
		}
		window, err := h.maintenanceService.UpdateMaintenance(c, id, patch)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("MaintenanceHandler.UpdateMaintenance: %w", err), fmt.Sprintf("failed to update maintenance window %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewMaintenanceResponse(window))
	}
}

func (h *maintenanceHandler) DeleteMaintenance() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.maintenanceService.DeleteMaintenance(c, id); err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("MaintenanceHandler.DeleteMaintenance: %w", err), fmt.Sprintf("failed to delete maintenance window %s", id))
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Message: "Maintenance window deleted"})
	}
}

func NewMaintenanceHandler(logger Logger, maintenanceService service.MaintenanceService) MaintenanceHandler {
	return &maintenanceHandler{
		logger:             logger,
		maintenanceService: maintenanceService,
	}
}
