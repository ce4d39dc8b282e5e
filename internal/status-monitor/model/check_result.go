package model

import (
	"math"
	"time"
)

type CheckResult struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	ServiceID      string `gorm:"index:idx_check_results_service_checked_at,priority:1"`
	Status         Status `gorm:"index"`
	ResponseTimeMs *int64
	StatusCode     *int
	ErrorMessage   *string
	CheckedAt      time.Time `gorm:"index;index:idx_check_results_service_checked_at,priority:2"`
}

// StatusCounts is the number of check results per status inside a window.
type StatusCounts struct {
	Operational   int64
	Degraded      int64
	PartialOutage int64
	MajorOutage   int64
	Maintenance   int64
}

func (c *StatusCounts) Add(status Status, n int64) {
	switch status {
	case StatusOperational:
		c.Operational += n
	case StatusDegraded:
		c.Degraded += n
	case StatusPartialOutage:
		c.PartialOutage += n
	case StatusMajorOutage:
		c.MajorOutage += n
	case StatusMaintenance:
		c.Maintenance += n
	}
}

func (c StatusCounts) Total() int64 {
	return c.Operational + c.Degraded + c.PartialOutage + c.MajorOutage + c.Maintenance
}

// Outages is the number of partial and major outage checks.
func (c StatusCounts) Outages() int64 {
	return c.PartialOutage + c.MajorOutage
}

// Uptime is the partial-credit availability percentage rounded to two decimals.
// Degraded checks count 80%, maintenance counts as up. 100 when there are no checks.
func (c StatusCounts) Uptime() float64 {
	total := c.Total()
	if total == 0 {
		return 100
	}
	up := float64(c.Operational) + 0.8*float64(c.Degraded) + float64(c.Maintenance)
	return RoundTo2(up / float64(total) * 100)
}

// DailyStatus classifies a day from the share of each status among its checks.
func (c StatusCounts) DailyStatus() Status {
	total := float64(c.Total())
	if total == 0 {
		return StatusOperational
	}
	switch {
	case float64(c.MajorOutage)/total > 0.10:
		return StatusMajorOutage
	case float64(c.PartialOutage)/total > 0.10:
		return StatusPartialOutage
	case float64(c.Degraded)/total > 0.20:
		return StatusDegraded
	case float64(c.Maintenance)/total > 0.10:
		return StatusMaintenance
	default:
		return StatusOperational
	}
}

func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
