package handler

import (
	apperrors "VCS_Status_Monitor/internal/status-monitor/errors"
	mockservice "VCS_Status_Monitor/internal/status-monitor/mocks/service"
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler_ListMaintenance(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		setupMocks     func(s *mockservice.MockMaintenanceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Without Filter",
			url:  "/api/maintenance",
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().ListMaintenance(gomock.Any(), model.MaintenanceStatus("")).
					Return([]model.MaintenanceWindow{{ID: "mw-1", Status: model.MaintenanceStatusScheduled}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"mw-1"`,
		},
		{
			name: "Success In Progress",
			url:  "/api/maintenance?status=in_progress",
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().ListMaintenance(gomock.Any(), model.MaintenanceStatusInProgress).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Error Invalid Status",
			url:            "/api/maintenance?status=paused",
			setupMocks:     func(s *mockservice.MockMaintenanceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Status must be one of: scheduled, in_progress, completed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			maintenanceService := mockservice.NewMockMaintenanceService(ctrl)
			tc.setupMocks(maintenanceService)
			h := NewMaintenanceHandler(nopLogger(), maintenanceService)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			h.ListMaintenance()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMaintenanceHandler_CreateMaintenance(t *testing.T) {
	start := time.Date(2026, 10, 2, 1, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	body := map[string]interface{}{
		"title":            "DB upgrade",
		"scheduledStart":   start,
		"scheduledEnd":     end,
		"affectedServices": []string{"db"},
	}
	input := model.MaintenanceWindow{
		Title:            "DB upgrade",
		ScheduledStart:   start,
		ScheduledEnd:     end,
		AffectedServices: []string{"db"},
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(s *mockservice.MockMaintenanceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: body,
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				created := input
				created.ID = "mw-1"
				created.Status = model.MaintenanceStatusScheduled
				s.EXPECT().CreateMaintenance(gomock.Any(), input).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"scheduled"`,
		},
		{
			name:           "Error Missing Schedule",
			body:           map[string]interface{}{"title": "DB upgrade"},
			setupMocks:     func(s *mockservice.MockMaintenanceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"The ScheduledStart field is required"`,
		},
		{
			name: "Error End Before Start",
			body: body,
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().CreateMaintenance(gomock.Any(), input).Return(model.MaintenanceWindow{}, apperrors.ErrInvalidMaintenanceTime)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Scheduled end must be after scheduled start"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			maintenanceService := mockservice.NewMockMaintenanceService(ctrl)
			tc.setupMocks(maintenanceService)
			h := NewMaintenanceHandler(nopLogger(), maintenanceService)

			w, c := setupTestContext(t, http.MethodPost, "/api/maintenance", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			h.CreateMaintenance()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMaintenanceHandler_UpdateMaintenance(t *testing.T) {
	inProgress := model.MaintenanceStatusInProgress

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(s *mockservice.MockMaintenanceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Status Only",
			body: `{"status":"in_progress"}`,
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().UpdateMaintenance(gomock.Any(), "mw-1", service.MaintenancePatch{Status: &inProgress}).
					Return(model.MaintenanceWindow{ID: "mw-1", Status: model.MaintenanceStatusInProgress}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"in_progress"`,
		},
		{
			name: "Success Title Only",
			body: `{"title":"Renamed"}`,
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().UpdateMaintenance(gomock.Any(), "mw-1", service.MaintenancePatch{Title: ptr("Renamed")}).
					Return(model.MaintenanceWindow{ID: "mw-1", Title: "Renamed"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Renamed"`,
		},
		{
			name:           "Error Invalid Status",
			body:           `{"status":"paused"}`,
			setupMocks:     func(s *mockservice.MockMaintenanceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Validation failed"`,
		},
		{
			name: "Error Not Found",
			body: `{}`,
			setupMocks: func(s *mockservice.MockMaintenanceService) {
				s.EXPECT().UpdateMaintenance(gomock.Any(), "mw-1", service.MaintenancePatch{}).
					Return(model.MaintenanceWindow{}, apperrors.ErrMaintenanceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Maintenance window not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			maintenanceService := mockservice.NewMockMaintenanceService(ctrl)
			tc.setupMocks(maintenanceService)
			h := NewMaintenanceHandler(nopLogger(), maintenanceService)

			w, c := setupTestContext(t, http.MethodPut, "/api/maintenance/mw-1", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "mw-1"}}
			h.UpdateMaintenance()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMaintenanceHandler_GetAndDeleteMaintenance(t *testing.T) {
	t.Run("Get Not Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		maintenanceService := mockservice.NewMockMaintenanceService(ctrl)
		maintenanceService.EXPECT().GetMaintenance(gomock.Any(), "ghost").Return(model.MaintenanceWindow{}, apperrors.ErrMaintenanceNotFound)
		h := NewMaintenanceHandler(nopLogger(), maintenanceService)

		w, c := setupTestContext(t, http.MethodGet, "/api/maintenance/ghost", nil)
		c.Params = gin.Params{{Key: "id", Value: "ghost"}}
		h.GetMaintenance()(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		maintenanceService := mockservice.NewMockMaintenanceService(ctrl)
		maintenanceService.EXPECT().DeleteMaintenance(gomock.Any(), "mw-1").Return(nil)
		h := NewMaintenanceHandler(nopLogger(), maintenanceService)

		w, c := setupTestContext(t, http.MethodDelete, "/api/maintenance/mw-1", nil)
		c.Params = gin.Params{{Key: "id", Value: "mw-1"}}
		h.DeleteMaintenance()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Maintenance window deleted"}`, w.Body.String())
	})
}
