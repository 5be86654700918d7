package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// RenderMode is decided once when a widget is created
type RenderMode int

const (
	// RenderModeNotRenderable is used when the milestone cannot have a chart,
	// e.g. it lacks a start or due date
	RenderModeNotRenderable RenderMode = iota
	// RenderModePrint draws a static, print friendly chart
	RenderModePrint
	// RenderModeInteractive draws an animated, clickable, resizable chart
	RenderModeInteractive
)

// DecideRenderMode maps the host page flags to a render mode
func DecideRenderMode(renderable, print bool) RenderMode {
	switch {
	case !renderable:
		return RenderModeNotRenderable
	case print:
		return RenderModePrint
	default:
		return RenderModeInteractive
	}
}

// String returns the string representation
func (m RenderMode) String() string {
	switch m {
	case RenderModeNotRenderable:
		return "not-renderable"
	case RenderModePrint:
		return "print"
	case RenderModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// MarshalText encodes the mode by name
func (m RenderMode) MarshalText() ([]byte, error) {
	if m < RenderModeNotRenderable || m > RenderModeInteractive {
		return nil, goerr.New("unknown render mode", goerr.V("mode", int(m)))
	}
	return []byte(m.String()), nil
}

// Renderable reports whether the mode draws anything
func (m RenderMode) Renderable() bool {
	return m == RenderModePrint || m == RenderModeInteractive
}

// UnmarshalText decodes a mode name
func (m *RenderMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not-renderable":
		*m = RenderModeNotRenderable
	case "print":
		*m = RenderModePrint
	case "interactive":
		*m = RenderModeInteractive
	default:
		return goerr.New("unknown render mode", goerr.V("mode", string(text)))
	}
	return nil
}
