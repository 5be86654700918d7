package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Metric is the unit in which milestone effort is measured
type Metric string

const (
	// MetricDefault leaves the choice to the upstream server
	MetricDefault Metric = ""
	MetricTickets Metric = "tickets"
	MetricHours   Metric = "hours"
	MetricPoints  Metric = "points"
)

// String returns the string representation of the metric
func (m Metric) String() string {
	return string(m)
}

// IsValid checks if the metric is one the upstream understands
func (m Metric) IsValid() bool {
	switch m {
	case MetricDefault, MetricTickets, MetricHours, MetricPoints:
		return true
	default:
		return false
	}
}

// ParseMetric parses user input into a Metric. The admin panel of the
// upstream plugin calls story points "story_points", so that spelling is
// accepted too.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "":
		return MetricDefault, nil
	case "tickets":
		return MetricTickets, nil
	case "hours":
		return MetricHours, nil
	case "points", "story_points":
		return MetricPoints, nil
	default:
		return "", goerr.New("unknown metric", goerr.V("metric", s))
	}
}
