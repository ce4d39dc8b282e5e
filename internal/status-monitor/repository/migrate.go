package repository

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"fmt"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Service{},
		&model.CheckResult{},
		&model.Incident{},
		&model.IncidentUpdate{},
		&model.MaintenanceWindow{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return nil
}
