package model

// LegendPlacement tells surfaces where to put the legend
type LegendPlacement string

const (
	LegendInside  LegendPlacement = "inside"
	LegendOutside LegendPlacement = "outside"
)

// Viewport is the drawing area in pixels
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

const (
	minViewportWidth  = 200
	minViewportHeight = 150
)

// Profile is the set of rendering switches that tell print output apart
// from interactive output. Both modes go through the same renderer.
type Profile struct {
	Animate         bool
	Clickable       bool
	ResizeReactive  bool
	ShowTitle       bool
	Legend          LegendPlacement
	DefaultViewport Viewport
}

var (
	interactiveProfile = Profile{
		Animate:         true,
		Clickable:       true,
		ResizeReactive:  true,
		ShowTitle:       false,
		Legend:          LegendInside,
		DefaultViewport: Viewport{Width: 800, Height: 400},
	}

	printProfile = Profile{
		Animate:         false,
		Clickable:       false,
		ResizeReactive:  false,
		ShowTitle:       true,
		Legend:          LegendOutside,
		DefaultViewport: Viewport{Width: 1200, Height: 600},
	}
)

// ProfileFor returns the profile of a render mode. NotRenderable gets the
// zero profile.
func ProfileFor(mode RenderMode) Profile {
	switch mode {
	case RenderModeInteractive:
		return interactiveProfile
	case RenderModePrint:
		return printProfile
	default:
		return Profile{}
	}
}

// Fit returns vp with missing dimensions taken from the profile default and
// tiny dimensions raised to a usable minimum
func (p Profile) Fit(vp Viewport) Viewport {
	if vp.Width <= 0 {
		vp.Width = p.DefaultViewport.Width
	}
	if vp.Height <= 0 {
		vp.Height = p.DefaultViewport.Height
	}
	if vp.Width < minViewportWidth {
		vp.Width = minViewportWidth
	}
	if vp.Height < minViewportHeight {
		vp.Height = minViewportHeight
	}
	return vp
}
