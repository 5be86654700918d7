package interfaces

//go:generate moq -out mocks/burndown_mock.go -pkg mocks . Fetcher ChartSurface StatusDisplay Navigator

import (
	"context"

	"github.com/secmon-lab/burndown/pkg/domain/model"
)

// Fetcher retrieves the burndown payload of a milestone. It never returns a
// bare error; transport problems resolve to a TransportError outcome.
type Fetcher interface {
	Fetch(ctx context.Context, req model.FetchRequest) model.FetchResult
}

// ChartSurface is a drawing target for chart documents
type ChartSurface interface {
	// Draw replaces whatever the surface shows with chart
	Draw(ctx context.Context, chart *model.Chart) error
	// Update redraws chart in place, keeping view state such as zoom
	Update(ctx context.Context, chart *model.Chart) error
}

// StatusDisplay shows a message in place of the chart
type StatusDisplay interface {
	ShowStatus(ctx context.Context, status model.Status) error
}

// Navigator sends the user to another page
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}
