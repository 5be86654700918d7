package surface

import (
	"time"

	"gonum.org/v1/plot"
)

// DayTicker places a labeled tick on every Interval-th day and an unlabeled
// tick on the days between. Axis values are Unix seconds; ticks sit at noon,
// where the data points are.
type DayTicker struct {
	Interval int
	Layout   string
	Location *time.Location
}

var _ plot.Ticker = DayTicker{}

// Ticks implements plot.Ticker
func (t DayTicker) Ticks(min, max float64) []plot.Tick {
	loc := t.Location
	if loc == nil {
		loc = time.Local
	}
	interval := t.Interval
	if interval < 1 {
		interval = 1
	}

	first := time.Unix(int64(min), 0).In(loc)
	day := time.Date(first.Year(), first.Month(), first.Day(), 12, 0, 0, 0, loc)
	if float64(day.Unix()) < min {
		day = day.AddDate(0, 0, 1)
	}

	var ticks []plot.Tick
	for i := 0; float64(day.Unix()) <= max; i++ {
		tick := plot.Tick{Value: float64(day.Unix())}
		if i%interval == 0 {
			tick.Label = day.Format(t.Layout)
		}
		ticks = append(ticks, tick)
		day = day.AddDate(0, 0, 1)
	}
	return ticks
}
