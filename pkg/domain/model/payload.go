package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ResultFlag is the "result" field of a burndown response. Depending on the
// upstream version it is a bool or a string; false, null, "", "false" and
// "no-data" all mean that no series could be computed.
type ResultFlag bool

// UnmarshalJSON accepts both bool and string encodings
func (f *ResultFlag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return goerr.Wrap(err, "failed to decode result flag")
	}

	switch x := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = ResultFlag(x)
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "no-data":
			*f = false
		default:
			*f = true
		}
	case float64:
		*f = x != 0
	default:
		return goerr.New("unsupported result flag", goerr.V("value", string(data)))
	}
	return nil
}

// RawEntry is one undecoded point of a raw series
type RawEntry struct {
	Date  string
	Value float64
}

// RawSeries is a series as sent by the upstream: either an ordered list of
// [date, value] pairs or a date-keyed object. Keyed records which form it was.
type RawSeries struct {
	Entries []RawEntry
	Keyed   bool
}

// Len returns the number of raw entries
func (s RawSeries) Len() int {
	return len(s.Entries)
}

// UnmarshalJSON decodes either series representation
func (s *RawSeries) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = RawSeries{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var pairs []json.RawMessage
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return goerr.Wrap(err, "failed to decode series pairs")
		}

		entries := make([]RawEntry, 0, len(pairs))
		for i, raw := range pairs {
			var pair []json.RawMessage
			if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
				return goerr.New("series entry must be a [date, value] pair",
					goerr.V("index", i),
					goerr.V("entry", string(raw)))
			}

			var date string
			if err := json.Unmarshal(pair[0], &date); err != nil {
				return goerr.Wrap(err, "series date must be a string", goerr.V("index", i))
			}

			value, err := decodeValue(pair[1])
			if err != nil {
				return goerr.Wrap(err, "invalid series value", goerr.V("index", i), goerr.V("date", date))
			}
			entries = append(entries, RawEntry{Date: date, Value: value})
		}
		*s = RawSeries{Entries: entries}

	case '{':
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return goerr.Wrap(err, "failed to decode keyed series")
		}

		// Key order only matters for stable error reporting; chronological
		// order is established by the normalizer.
		dates := make([]string, 0, len(keyed))
		for date := range keyed {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		entries := make([]RawEntry, 0, len(dates))
		for _, date := range dates {
			value, err := decodeValue(keyed[date])
			if err != nil {
				return goerr.Wrap(err, "invalid series value", goerr.V("date", date))
			}
			entries = append(entries, RawEntry{Date: date, Value: value})
		}
		*s = RawSeries{Entries: entries, Keyed: true}

	default:
		return goerr.New("series must be an array or an object", goerr.V("data", string(trimmed)))
	}

	return nil
}

func decodeValue(raw json.RawMessage) (float64, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, goerr.Wrap(err, "failed to decode value")
	}

	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, goerr.Wrap(err, "value is not numeric", goerr.V("value", x))
		}
		return f, nil
	case nil:
		return 0, nil
	default:
		return 0, goerr.New("unsupported value type", goerr.V("value", string(raw)))
	}
}

// BurndownPayload is the response of the upstream burndown endpoint
type BurndownPayload struct {
	Result          ResultFlag `json:"result"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	EffortUnits     string     `json:"effortUnits"`
	MilestoneName   string     `json:"milestoneName"`
	TimelineURLBase string     `json:"timelineUrlBase"`
	IdealCurveData  RawSeries  `json:"idealCurveData"`
	BurndownData    RawSeries  `json:"burndownData"`
	TeamEffortData  RawSeries  `json:"teamEffortData"`
	WorkAddedData   RawSeries  `json:"workAddedData"`
}

// HasData reports whether the upstream computed any series
func (p *BurndownPayload) HasData() bool {
	return p != nil && bool(p.Result)
}

// Raw returns the raw series for a role
func (p *BurndownPayload) Raw(role SeriesRole) RawSeries {
	switch role {
	case SeriesIdeal:
		return p.IdealCurveData
	case SeriesRemaining:
		return p.BurndownData
	case SeriesTeamEffort:
		return p.TeamEffortData
	case SeriesWorkAdded:
		return p.WorkAddedData
	default:
		return RawSeries{}
	}
}
