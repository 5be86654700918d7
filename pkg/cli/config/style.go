package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Style holds the chart style configuration
type Style struct {
	File string
}

// Flags returns CLI flags for Style configuration
func (s *Style) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "style-file",
			Usage:       "YAML file overriding chart colors, labels and tick format",
			Category:    "Style",
			Sources:     cli.EnvVars("BURNDOWN_STYLE_FILE"),
			Destination: &s.File,
		},
	}
}

// Configure returns the chart style. Without a style file the default
// style is used.
func (s *Style) Configure() (*model.Style, error) {
	if s.File == "" {
		return model.DefaultStyle(), nil
	}
	return LoadStyleFromFile(s.File)
}

// LoadStyleFromFile loads a chart style from YAML file. Fields left out keep
// their default values.
func LoadStyleFromFile(path string) (*model.Style, error) {
	if path == "" {
		return nil, goerr.New("style file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "style file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read style file",
			goerr.V("path", path))
	}

	// Parse YAML
	var style model.Style
	if err := yaml.Unmarshal(data, &style); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML style",
			goerr.V("path", path))
	}

	merged := style.WithDefaults()
	if err := merged.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid style",
			goerr.V("path", path))
	}

	return merged, nil
}

// LogValue returns structured log value
func (s Style) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", s.File),
	)
}
