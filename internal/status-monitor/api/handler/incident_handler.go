package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/request"
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=incident_handler.go -destination=../../mocks/api/handler/incident_handler_mock.go -package=mockhandler

type IncidentHandler interface {
	ListIncidents() gin.HandlerFunc
	GetIncident() gin.HandlerFunc
	CreateIncident() gin.HandlerFunc
	UpdateIncident() gin.HandlerFunc
	DeleteIncident() gin.HandlerFunc
}

type incidentHandler struct {
	logger          Logger
	incidentService service.IncidentService
}

func (h *incidentHandler) ListIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		if status != "" && status != repository.IncidentFilterActive && status != repository.IncidentFilterResolved {
			abortWithError(c, http.StatusBadRequest, "Status must be one of: active, resolved")
			return
		}
		limit, ok := queryLimit(c, service.DefaultIncidentLimit, 0)
		if !ok {
			return
		}
		incidents, err := h.incidentService.ListIncidents(c, status, limit)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("IncidentHandler.ListIncidents: %w", err), "failed to list incidents")
			return
		}
		c.JSON(http.StatusOK, response.NewIncidentResponses(incidents))
	}
}

func (h *incidentHandler) GetIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		incident, err := h.incidentService.GetIncident(c, id)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("IncidentHandler.GetIncident: %w", err), fmt.Sprintf("failed to get incident %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewIncidentResponse(incident))
	}
}

func (h *incidentHandler) CreateIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateIncidentRequest
		if !bindJSON(c, &req) {
			return
		}
		incident, err := h.incidentService.CreateIncident(c, model.Incident{
			Title:            req.Title,
			Description:      req.Description,
			Impact:           model.IncidentImpact(req.Impact),
			AffectedServices: req.AffectedServices,
		})
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("IncidentHandler.CreateIncident: %w", err), "failed to create incident")
			return
		}
		c.JSON(http.StatusCreated, response.NewIncidentResponse(incident))
	}
}

func (h *incidentHandler) UpdateIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateIncidentRequest
		if !bindJSON(c, &req) {
			return
		}
		incident, err := h.incidentService.UpdateIncident(c, id, req.Message, model.IncidentStatus(req.Status))
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("IncidentHandler.UpdateIncident: %w", err), fmt.Sprintf("failed to update incident %s", id))
			return
		}
		c.JSON(http.StatusOK, response.NewIncidentResponse(incident))
	}
}

func (h *incidentHandler) DeleteIncident() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.incidentService.DeleteIncident(c, id); err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("IncidentHandler.DeleteIncident: %w", err), fmt.Sprintf("failed to delete incident %s", id))
			return
		}
		c.JSON(http.StatusOK, response.MessageResponse{Message: "Incident deleted"})
	}
}

func NewIncidentHandler(logger Logger, incidentService service.IncidentService) IncidentHandler {
	return &incidentHandler{
		logger:          logger,
		incidentService: incidentService,
	}
}
