package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the only date form exchanged with the upstream tracker
const DateLayout = "2006-01-02"

// dateHour is the time of day every calendar date is pinned to. Noon keeps a
// point inside its own day whatever the chart does with time zones, and no
// DST transition happens at noon, so the conversion stays invertible.
const dateHour = 12

// DateToTimestamp converts a yyyy-mm-dd date to epoch milliseconds at noon in
// loc. Month and day must be zero padded.
func DateToTimestamp(date string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidDateFormat, "cannot parse date",
			goerr.V("date", date),
			goerr.V("cause", err.Error()))
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, dateHour, 0, 0, 0, loc).UnixMilli(), nil
}

// TimestampToDate converts epoch milliseconds back to the yyyy-mm-dd date it
// falls on in loc. It is the inverse of DateToTimestamp.
func TimestampToDate(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ts).In(loc).Format(DateLayout)
}

// ValidateDate reports whether date is a valid yyyy-mm-dd string
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return goerr.Wrap(ErrInvalidDateFormat, "cannot parse date",
			goerr.V("date", date))
	}
	return nil
}

// NavigationURL builds the activity timeline link for a clicked point
func NavigationURL(timelineURLBase string, ts int64, loc *time.Location) string {
	return timelineURLBase + "&from=" + TimestampToDate(ts, loc)
}
