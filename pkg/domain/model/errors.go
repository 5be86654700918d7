package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for burndown operations
var (
	// ErrInvalidDateFormat means a date is not a valid yyyy-mm-dd string
	ErrInvalidDateFormat = goerr.New("invalid date format")
	// ErrNoDataAvailable means the upstream has no computable series for the milestone
	ErrNoDataAvailable = goerr.New("no burndown data available")
	// ErrTransport means the upstream endpoint could not be reached or answered badly
	ErrTransport = goerr.New("failed to retrieve burndown data")
	// ErrInvalidRequest means a fetch request failed validation before being sent
	ErrInvalidRequest = goerr.New("invalid burndown request")
	// ErrNotInteractive means a point was activated on a non-interactive chart
	ErrNotInteractive = goerr.New("chart is not interactive")
	// ErrNothingRendered means an operation needs a chart that has not been drawn yet
	ErrNothingRendered = goerr.New("no chart has been rendered")
	// ErrInvalidStyle means the chart style configuration is unusable
	ErrInvalidStyle = goerr.New("invalid chart style")
)
