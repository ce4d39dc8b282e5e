package handler

import (
	"VCS_Status_Monitor/internal/status-monitor/api/dto/response"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=history_handler.go -destination=../../mocks/api/handler/history_handler_mock.go -package=mockhandler

type HistoryHandler interface {
	GetHistory() gin.HandlerFunc
	ExportHistory() gin.HandlerFunc
}

type historyHandler struct {
	logger         Logger
	historyService service.HistoryService
}

func (h *historyHandler) GetHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceID := c.DefaultQuery("service", service.AllServices)
		days, ok := queryDays(c)
		if !ok {
			return
		}
		timeline, err := h.historyService.GetTimeline(c, serviceID, days)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("HistoryHandler.GetHistory: %w", err), "failed to get history")
			return
		}
		c.JSON(http.StatusOK, response.NewDayStatusResponses(timeline))
	}
}

func (h *historyHandler) ExportHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceID := c.DefaultQuery("service", service.AllServices)
		days, ok := queryDays(c)
		if !ok {
			return
		}
		timeline, err := h.historyService.GetTimeline(c, serviceID, days)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("HistoryHandler.ExportHistory: %w", err), "failed to export history")
			return
		}
		file, err := h.generateExcelFile(timeline)
		if err != nil {
			writeServiceError(c, h.logger, fmt.Errorf("HistoryHandler.ExportHistory: %w", err), "failed to export history")
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("history-%s-%s.xlsx", serviceID, time.Now().UTC().Format("2006-01-02T15-04-05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		c.Status(http.StatusOK)
		if err = file.Write(c.Writer); err != nil {
			h.logger.LoggingError(c, fmt.Errorf("HistoryHandler.ExportHistory: %w", err), "failed to write history file", zap.ErrorLevel)
		}
	}
}

func (h *historyHandler) generateExcelFile(timeline []model.DayStatus) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err = f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}
	headers := []interface{}{"date", "status", "uptime", "incidents", "response_time_ms", "total_checks"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, day := range timeline {
		rowData := []interface{}{
			day.Date,
			string(day.Status),
			day.Uptime,
			day.Incidents,
			day.ResponseTimeMs,
			day.TotalChecks,
		}
		if err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func NewHistoryHandler(logger Logger, historyService service.HistoryService) HistoryHandler {
	return &historyHandler{
		logger:         logger,
		historyService: historyService,
	}
}
