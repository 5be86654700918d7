package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Normalize converts a raw series into chronologically ordered points. Every
// date goes through DateToTimestamp; the first bad date fails the whole
// series so that no partial chart is ever drawn.
func Normalize(role SeriesRole, raw RawSeries, loc *time.Location) (EffortSeries, error) {
	points := make([]EffortPoint, 0, raw.Len())
	for i, entry := range raw.Entries {
		ts, err := DateToTimestamp(entry.Date, loc)
		if err != nil {
			return EffortSeries{}, goerr.Wrap(err, "invalid date in series",
				goerr.V("role", role),
				goerr.V("index", i),
				goerr.V("date", entry.Date),
				goerr.V("value", entry.Value))
		}
		points = append(points, EffortPoint{Timestamp: ts, Value: entry.Value})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})

	return EffortSeries{Role: role, Points: points}, nil
}

// NormalizePayload normalizes all four series of a payload
func NormalizePayload(p *BurndownPayload, loc *time.Location) (SeriesSet, error) {
	var set SeriesSet
	for _, role := range SeriesRoles {
		series, err := Normalize(role, p.Raw(role), loc)
		if err != nil {
			return SeriesSet{}, err
		}
		set.set(series)
	}
	return set, nil
}
