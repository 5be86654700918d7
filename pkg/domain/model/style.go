package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SeriesStyle is how one series role is drawn
type SeriesStyle struct {
	Label      string  `yaml:"label"`
	Color      string  `yaml:"color"`
	Dashed     bool    `yaml:"dashed"`
	LineWidth  float64 `yaml:"line_width"`
	ShowMarker bool    `yaml:"show_marker"`
}

// Validate validates the series style
func (s *SeriesStyle) Validate() error {
	if s.Label == "" {
		return goerr.Wrap(ErrInvalidStyle, "series label is required")
	}
	if !colorPattern.MatchString(s.Color) {
		return goerr.Wrap(ErrInvalidStyle, "series color must be #RGB or #RRGGBB",
			goerr.V("color", s.Color))
	}
	if s.LineWidth < 0 {
		return goerr.Wrap(ErrInvalidStyle, "line width must not be negative",
			goerr.V("line_width", s.LineWidth))
	}
	return nil
}

// Style is the look of every chart the service draws
type Style struct {
	Ideal      SeriesStyle `yaml:"ideal"`
	Remaining  SeriesStyle `yaml:"remaining"`
	TeamEffort SeriesStyle `yaml:"team_effort"`
	WorkAdded  SeriesStyle `yaml:"work_added"`

	XAxisLabel string `yaml:"x_axis_label"`
	// TickLayout is a Go time layout for time axis labels
	TickLayout string `yaml:"tick_layout"`
}

// DefaultStyle matches the colors of the tracker's own milestone pages
func DefaultStyle() *Style {
	return &Style{
		Ideal:      SeriesStyle{Label: "Ideal effort", Color: "#AAAAAA", Dashed: true, LineWidth: 1.25},
		Remaining:  SeriesStyle{Label: "Remaining effort", Color: "#23932C", LineWidth: 2},
		TeamEffort: SeriesStyle{Label: "Team effort", Color: "#FFD600", LineWidth: 2},
		WorkAdded:  SeriesStyle{Label: "Work added", Color: "#0066CC", LineWidth: 2},
		XAxisLabel: "Days in Milestone",
		TickLayout: "02 Jan",
	}
}

// For returns the style of a role
func (s *Style) For(role SeriesRole) SeriesStyle {
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
		return SeriesStyle{Label: string(role), Color: "#000000", LineWidth: 1}
	}
}

// WithDefaults fills every unset field from DefaultStyle
func (s *Style) WithDefaults() *Style {
	def := DefaultStyle()
	merged := *s

	fill := func(dst *SeriesStyle, src SeriesStyle) {
		if dst.Label == "" {
			dst.Label = src.Label
		}
		if dst.Color == "" {
			dst.Color = src.Color
		}
		if dst.LineWidth == 0 {
			dst.LineWidth = src.LineWidth
		}
	}
	fill(&merged.Ideal, def.Ideal)
	fill(&merged.Remaining, def.Remaining)
	fill(&merged.TeamEffort, def.TeamEffort)
	fill(&merged.WorkAdded, def.WorkAdded)

	if merged.XAxisLabel == "" {
		merged.XAxisLabel = def.XAxisLabel
	}
	if merged.TickLayout == "" {
		merged.TickLayout = def.TickLayout
	}
	return &merged
}

// Validate validates the whole style
func (s *Style) Validate() error {
	for _, role := range SeriesRoles {
		st := s.For(role)
		if err := st.Validate(); err != nil {
			return goerr.Wrap(err, "invalid series style", goerr.V("role", role))
		}
	}
	if s.TickLayout == "" {
		return goerr.Wrap(ErrInvalidStyle, "tick layout is required")
	}
	return nil
}
