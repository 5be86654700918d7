package model

import (
	"github.com/secmon-lab/burndown/pkg/domain/types"
)

// ChartSeries is one drawn line
type ChartSeries struct {
	Role       SeriesRole    `json:"role"`
	Label      string        `json:"label"`
	Color      string        `json:"color"`
	Dashed     bool          `json:"dashed"`
	LineWidth  float64       `json:"lineWidth"`
	ShowMarker bool          `json:"showMarker"`
	Points     []EffortPoint `json:"points"`
}

// TimeAxis is the horizontal axis. Min and Max are epoch milliseconds.
type TimeAxis struct {
	Label      string       `json:"label"`
	Min        int64        `json:"min"`
	Max        int64        `json:"max"`
	Interval   TickInterval `json:"interval"`
	TickLayout string       `json:"-"`
}

// ValueAxis is the vertical effort axis
type ValueAxis struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
}

// Legend describes the series key
type Legend struct {
	Show      bool            `json:"show"`
	Placement LegendPlacement `json:"placement"`
}

// Chart is a complete, surface independent description of a burndown chart
type Chart struct {
	MilestoneID   types.MilestoneID `json:"milestoneId"`
	Mode          RenderMode        `json:"mode"`
	Title         string            `json:"title,omitempty"`
	Series        []ChartSeries     `json:"series"`
	XAxis         TimeAxis          `json:"xAxis"`
	YAxis         ValueAxis         `json:"yAxis"`
	Legend        Legend            `json:"legend"`
	Animate       bool              `json:"animate"`
	Clickable     bool              `json:"clickable"`
	TooltipFormat string            `json:"tooltipFormat"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
}

// FindSeries returns the drawn series for a role
func (c *Chart) FindSeries(role SeriesRole) *ChartSeries {
	for i := range c.Series {
		if c.Series[i].Role == role {
			return &c.Series[i]
		}
	}
	return nil
}
