package model

import (
	"fmt"

	"github.com/secmon-lab/burndown/pkg/domain/types"
)

// ImageFormat is an encoding supported by the print surface
type ImageFormat string

const (
	ImageFormatPNG ImageFormat = "png"
	ImageFormatSVG ImageFormat = "svg"
)

// IsValid checks if the format is supported
func (f ImageFormat) IsValid() bool {
	return f == ImageFormatPNG || f == ImageFormatSVG
}

// ContentType returns the MIME type of the format
func (f ImageFormat) ContentType() string {
	if f == ImageFormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Snapshot is a rendered print chart ready to be shared
type Snapshot struct {
	MilestoneID types.MilestoneID
	Title       string
	Format      ImageFormat
	Data        []byte
}

// Filename returns a file name for the snapshot
func (s *Snapshot) Filename() string {
	return fmt.Sprintf("burndown-%s.%s", s.MilestoneID, s.Format)
}
