package model

import "time"

const (
	DefaultTimeoutMs          = 5000
	DefaultExpectedStatusCode = 200
)

type Service struct {
	ID                   string `gorm:"primaryKey"`
	Name                 string
	Description          string
	URL                  *string
	Category             string `gorm:"index"`
	CheckIntervalSeconds int
	TimeoutMs            int
	ExpectedStatusCode   int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Probeable reports whether the service has an HTTP endpoint to check.
func (s Service) Probeable() bool {
	return s.URL != nil && *s.URL != ""
}

// Timeout returns the per-check timeout, falling back to DefaultTimeoutMs.
func (s Service) Timeout() time.Duration {
	if s.TimeoutMs <= 0 {
		return DefaultTimeoutMs * time.Millisecond
	}
	return time.Duration(s.TimeoutMs) * time.Millisecond
}
