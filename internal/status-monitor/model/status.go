package model

// Status is the health classification of a service. Statuses are ordered by
// severity, see Severity.
type Status string

const (
	StatusOperational   Status = "operational"
	StatusMaintenance   Status = "maintenance"
	StatusDegraded      Status = "degraded"
	StatusPartialOutage Status = "partial_outage"
	StatusMajorOutage   Status = "major_outage"
)

// Statuses lists every status from least to most severe.
var Statuses = []Status{
	StatusOperational,
	StatusMaintenance,
	StatusDegraded,
	StatusPartialOutage,
	StatusMajorOutage,
}

// Severity returns the rank of s, higher is more severe. Invalid statuses rank -1.
func (s Status) Severity() int {
	switch s {
	case StatusOperational:
		return 0
	case StatusMaintenance:
		return 1
	case StatusDegraded:
		return 2
	case StatusPartialOutage:
		return 3
	case StatusMajorOutage:
		return 4
	default:
		return -1
	}
}

func (s Status) IsValid() bool {
	return s.Severity() >= 0
}

// IsOutage reports whether s counts as an outage for incident statistics.
func (s Status) IsOutage() bool {
	return s == StatusMajorOutage || s == StatusPartialOutage
}

// MoreSevere returns the more severe of a and b. Ties return a.
func MoreSevere(a, b Status) Status {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// WorstStatus folds statuses with MoreSevere, starting from operational.
func WorstStatus(statuses ...Status) Status {
	worst := StatusOperational
	for _, s := range statuses {
		worst = MoreSevere(worst, s)
	}
	return worst
}
