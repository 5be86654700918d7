package usecase_test

import (
	"time"

	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// testPayload builds a milestone starting 2013-07-01 with one point per day
func testPayload(days int, withWorkAdded bool) *model.BurndownPayload {
	start := time.Date(2013, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, days-1)

	p := &model.BurndownPayload{
		Result:          true,
		StartDate:       start.Format(model.DateLayout),
		EndDate:         end.Format(model.DateLayout),
		EffortUnits:     "hours",
		MilestoneName:   "milestone1",
		TimelineURLBase: "/timeline?milestone=milestone1&daysback=0",
	}

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(model.DateLayout)
		remaining := float64(days - i)
		p.IdealCurveData.Entries = append(p.IdealCurveData.Entries, model.RawEntry{Date: date, Value: remaining})
		p.BurndownData.Entries = append(p.BurndownData.Entries, model.RawEntry{Date: date, Value: remaining + 1})
		p.TeamEffortData.Entries = append(p.TeamEffortData.Entries, model.RawEntry{Date: date, Value: float64(i)})
		if withWorkAdded && i%3 == 0 {
			p.WorkAddedData.Entries = append(p.WorkAddedData.Entries, model.RawEntry{Date: date, Value: 2})
		}
	}
	return p
}
