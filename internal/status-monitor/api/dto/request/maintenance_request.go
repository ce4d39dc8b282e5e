package request

import "time"

type CreateMaintenanceRequest struct {
	Title            string     `json:"title" binding:"required,max=200"`
	Description      string     `json:"description"`
	ScheduledStart   *time.Time `json:"scheduledStart" binding:"required"`
	ScheduledEnd     *time.Time `json:"scheduledEnd" binding:"required"`
	Status           string     `json:"status" binding:"omitempty,oneof=scheduled in_progress completed"`
	AffectedServices []string   `json:"affectedServices" binding:"omitempty,dive,required"`
}

type UpdateMaintenanceRequest struct {
	Title            *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description      *string    `json:"description"`
	ScheduledStart   *time.Time `json:"scheduledStart"`
	ScheduledEnd     *time.Time `json:"scheduledEnd"`
	Status           *string    `json:"status" binding:"omitempty,oneof=scheduled in_progress completed"`
	AffectedServices *[]string  `json:"affectedServices" binding:"omitempty,dive,required"`
}
