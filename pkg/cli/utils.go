package cli

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// formatOf picks the image format from the output file extension
func formatOf(output string) (model.ImageFormat, error) {
	if output == "" {
		return model.ImageFormatPNG, nil
	}
	format := model.ImageFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), "."))
	if !format.IsValid() {
		return "", goerr.New("output must be a .png or .svg file", goerr.V("path", output))
	}
	return format, nil
}
