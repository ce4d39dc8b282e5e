package routes

import (
	"VCS_Status_Monitor/internal/status-monitor/api/handler"
	"VCS_Status_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const ScopeStatusWrite = "status:write"

func AddStatusRoutes(r gin.IRouter, h handler.StatusHandler) {
	statusRoutes := r.Group("/status")
	statusRoutes.GET("", h.GetStatus())
	statusRoutes.GET("/service/:id", h.GetServiceChecks())
	statusRoutes.GET("/uptime/:id", h.GetServiceUptime())

	r.GET("/services", h.ListServices())

	statsRoutes := r.Group("/stats")
	statsRoutes.GET("", h.GetStats())
	statsRoutes.GET("/:serviceId", h.GetServiceStats())
}

func AddHistoryRoutes(r gin.IRouter, h handler.HistoryHandler) {
	historyRoutes := r.Group("/history")
	historyRoutes.GET("", h.GetHistory())
	historyRoutes.GET("/export", h.ExportHistory())
}

func AddIncidentRoutes(r gin.IRouter, h handler.IncidentHandler, m middleware.AuthMiddleware) {
	incidentRoutes := r.Group("/incidents")
	incidentRoutes.GET("", h.ListIncidents())
	incidentRoutes.GET("/:id", h.GetIncident())
	incidentRoutes.POST("", m.CheckUserPermission(ScopeStatusWrite), h.CreateIncident())
	incidentRoutes.PUT("/:id", m.CheckUserPermission(ScopeStatusWrite), h.UpdateIncident())
	incidentRoutes.DELETE("/:id", m.CheckUserPermission(ScopeStatusWrite), h.DeleteIncident())
}

func AddMaintenanceRoutes(r gin.IRouter, h handler.MaintenanceHandler, m middleware.AuthMiddleware) {
	maintenanceRoutes := r.Group("/maintenance")
	maintenanceRoutes.GET("", h.ListMaintenance())
	maintenanceRoutes.GET("/:id", h.GetMaintenance())
	maintenanceRoutes.POST("", m.CheckUserPermission(ScopeStatusWrite), h.CreateMaintenance())
	maintenanceRoutes.PUT("/:id", m.CheckUserPermission(ScopeStatusWrite), h.UpdateMaintenance())
	maintenanceRoutes.DELETE("/:id", m.CheckUserPermission(ScopeStatusWrite), h.DeleteMaintenance())
}

func AddHealthRoutes(r gin.IRouter, h handler.HealthHandler) {
	r.GET("/health", h.Health())
}
