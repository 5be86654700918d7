package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/types"
)

const halfDayMillis = int64(12 * time.Hour / time.Millisecond)

// RenderOptions is derived fresh for every render from the payload, the
// render mode and the current viewport
type RenderOptions struct {
	MilestoneID     types.MilestoneID
	Mode            RenderMode
	Profile         Profile
	Title           string
	EffortUnits     string
	TimelineURLBase string
	XMin            int64
	XMax            int64
	Interval        TickInterval
	Viewport        Viewport
}

// NewRenderOptions computes axis bounds, tick interval and layout. The time
// axis spans whole days from the milestone start to its due date; when the
// payload lacks either date the span of the plotted points is used instead.
func NewRenderOptions(p *BurndownPayload, set SeriesSet, mode RenderMode, vp Viewport, loc *time.Location) (RenderOptions, error) {
	profile := ProfileFor(mode)
	opts := RenderOptions{
		Mode:            mode,
		Profile:         profile,
		EffortUnits:     p.EffortUnits,
		TimelineURLBase: p.TimelineURLBase,
		Interval:        NewTickInterval(set.PointCount()),
		Viewport:        profile.Fit(vp),
	}

	if profile.ShowTitle {
		opts.Title = p.MilestoneName
	}

	spanMin, spanMax, hasPoints := set.Span()

	if p.StartDate != "" {
		ts, err := DateToTimestamp(p.StartDate, loc)
		if err != nil {
			return RenderOptions{}, goerr.Wrap(err, "invalid milestone start date")
		}
		opts.XMin = ts
	} else if hasPoints {
		opts.XMin = spanMin
	}

	if p.EndDate != "" {
		ts, err := DateToTimestamp(p.EndDate, loc)
		if err != nil {
			return RenderOptions{}, goerr.Wrap(err, "invalid milestone end date")
		}
		opts.XMax = ts
	} else if hasPoints {
		opts.XMax = spanMax
	}

	if opts.XMax < opts.XMin {
		opts.XMin, opts.XMax = opts.XMax, opts.XMin
	}

	// Points sit at noon, so widen the bounds to the surrounding midnights
	opts.XMin -= halfDayMillis
	opts.XMax += halfDayMillis

	return opts, nil
}

// WithViewport returns a copy of the options fitted to a new viewport
func (o RenderOptions) WithViewport(vp Viewport) RenderOptions {
	o.Viewport = o.Profile.Fit(vp)
	return o
}

// WithoutAnimation returns a copy of the options with transitions disabled
func (o RenderOptions) WithoutAnimation() RenderOptions {
	o.Profile.Animate = false
	return o
}
