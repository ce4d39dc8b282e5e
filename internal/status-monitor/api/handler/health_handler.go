package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=health_handler.go -destination=../../mocks/api/handler/health_handler_mock.go -package=mockhandler

type HealthHandler interface {
	Health() gin.HandlerFunc
}

type healthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

func (h *healthHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := h.now()
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:    "ok",
			Timestamp: now.UTC(),
			Uptime:    int64(now.Sub(h.startedAt).Seconds()),
		})
	}
}

func NewHealthHandler(startedAt time.Time) HealthHandler {
	return &healthHandler{
		startedAt: startedAt,
		now:       time.Now,
	}
}
