package model

import (
	"github.com/samber/lo"
)

// SeriesRole names what a series plots
type SeriesRole string

const (
	SeriesIdeal      SeriesRole = "ideal"
	SeriesRemaining  SeriesRole = "remaining"
	SeriesTeamEffort SeriesRole = "teamEffort"
	SeriesWorkAdded  SeriesRole = "workAdded"
)

// SeriesRoles lists every role in plotting order
var SeriesRoles = []SeriesRole{SeriesIdeal, SeriesRemaining, SeriesTeamEffort, SeriesWorkAdded}

// IsOptional reports whether a chart may omit the role when it has no points
func (r SeriesRole) IsOptional() bool {
	return r == SeriesWorkAdded
}

// EffortPoint is one plotted value. Timestamp is epoch milliseconds.
type EffortPoint struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// EffortSeries is an ordered run of points for one role
type EffortSeries struct {
	Role   SeriesRole    `json:"role"`
	Points []EffortPoint `json:"points"`
}

// Len returns the number of points
func (s EffortSeries) Len() int {
	return len(s.Points)
}

// SeriesSet holds the normalized series of one payload
type SeriesSet struct {
	Ideal      EffortSeries
	Remaining  EffortSeries
	TeamEffort EffortSeries
	WorkAdded  EffortSeries
}

// Get returns the series for a role
func (s SeriesSet) Get(role SeriesRole) EffortSeries {
	switch role {
	case SeriesIdeal:
		return s.Ideal
	case SeriesRemaining:
		return s.Remaining
	case SeriesTeamEffort:
		return s.TeamEffort
	case SeriesWorkAdded:
		return s.WorkAdded
	default:
		return EffortSeries{Role: role}
	}
}

func (s *SeriesSet) set(series EffortSeries) {
	switch series.Role {
	case SeriesIdeal:
		s.Ideal = series
	case SeriesRemaining:
		s.Remaining = series
	case SeriesTeamEffort:
		s.TeamEffort = series
	case SeriesWorkAdded:
		s.WorkAdded = series
	}
}

// Plotted returns the series a chart shows, in plotting order. Optional
// series are dropped when empty.
func (s SeriesSet) Plotted() []EffortSeries {
	all := lo.Map(SeriesRoles, func(role SeriesRole, _ int) EffortSeries {
		return s.Get(role)
	})
	return lo.Filter(all, func(series EffortSeries, _ int) bool {
		return !series.Role.IsOptional() || series.Len() > 0
	})
}

// PointCount returns the length of the longest series. It drives the tick
// interval of the time axis.
func (s SeriesSet) PointCount() int {
	return lo.Max(lo.Map(SeriesRoles, func(role SeriesRole, _ int) int {
		return s.Get(role).Len()
	}))
}

// Span returns the earliest and latest timestamps over all series
func (s SeriesSet) Span() (minTS, maxTS int64, ok bool) {
	for _, role := range SeriesRoles {
		for _, p := range s.Get(role).Points {
			if !ok || p.Timestamp < minTS {
				minTS = p.Timestamp
			}
			if !ok || p.Timestamp > maxTS {
				maxTS = p.Timestamp
			}
			ok = true
		}
	}
	return minTS, maxTS, ok
}
