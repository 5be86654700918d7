package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/types"
)

// FetchRequest selects the burndown data of one milestone
type FetchRequest struct {
	MilestoneID     types.MilestoneID
	Metric          types.Metric
	ApproxStartDate string
}

// Validate checks the request before it is sent
func (r FetchRequest) Validate() error {
	if err := r.MilestoneID.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidRequest, "milestone ID is required")
	}
	if !r.Metric.IsValid() {
		return goerr.Wrap(ErrInvalidRequest, "unknown metric", goerr.V("metric", r.Metric))
	}
	if r.ApproxStartDate != "" {
		if err := ValidateDate(r.ApproxStartDate); err != nil {
			return goerr.Wrap(ErrInvalidRequest, "invalid approximate start date",
				goerr.V("approx_start_date", r.ApproxStartDate))
		}
	}
	return nil
}

// FetchOutcome tells the caller which branch a fetch took
type FetchOutcome int

const (
	OutcomePayload FetchOutcome = iota
	OutcomeNoData
	OutcomeTransportError
)

// String returns the string representation
func (o FetchOutcome) String() string {
	switch o {
	case OutcomePayload:
		return "payload"
	case OutcomeNoData:
		return "no-data"
	case OutcomeTransportError:
		return "transport-error"
	default:
		return "unknown"
	}
}

// FetchResult is what a fetcher resolves to. Fetchers never return a bare
// error; failures are a TransportError outcome carrying Err.
type FetchResult struct {
	Outcome FetchOutcome
	Payload *BurndownPayload
	Err     error
}

// PayloadResult wraps a successful response
func PayloadResult(p *BurndownPayload) FetchResult {
	return FetchResult{Outcome: OutcomePayload, Payload: p}
}

// NoDataResult marks a reachable upstream without series
func NoDataResult() FetchResult {
	return FetchResult{Outcome: OutcomeNoData}
}

// TransportFailure marks a request that did not produce a usable response
func TransportFailure(err error) FetchResult {
	return FetchResult{Outcome: OutcomeTransportError, Err: goerr.Wrap(ErrTransport, "burndown fetch failed", goerr.V("cause", errString(err)))}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
