package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/burndown/pkg/cli/config"
	"github.com/secmon-lab/burndown/pkg/domain/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadStyleFromFile(t *testing.T) {
	t.Run("partial style keeps defaults", func(t *testing.T) {
		path := writeFile(t, "style.yaml", `
remaining:
  label: Open hours
  color: "#FF0000"
tick_layout: "Jan 2"
`)
		style, err := config.LoadStyleFromFile(path)
		gt.NoError(t, err).Required()

		gt.Equal(t, style.Remaining.Label, "Open hours")
		gt.Equal(t, style.Remaining.Color, "#FF0000")
		gt.Equal(t, style.Remaining.LineWidth, model.DefaultStyle().Remaining.LineWidth)
		gt.Equal(t, style.TickLayout, "Jan 2")
		gt.Equal(t, style.Ideal, model.DefaultStyle().Ideal)
		gt.Equal(t, style.XAxisLabel, model.DefaultStyle().XAxisLabel)
	})

	t.Run("invalid color", func(t *testing.T) {
		path := writeFile(t, "style.yaml", `
ideal:
  color: grey
`)
		_, err := config.LoadStyleFromFile(path)
		gt.True(t, errors.Is(err, model.ErrInvalidStyle))
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writeFile(t, "style.yaml", "ideal: [")
		_, err := config.LoadStyleFromFile(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadStyleFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadStyleFromFile("")
		gt.Error(t, err)
	})
}

func TestStyleConfigure(t *testing.T) {
	var cfg config.Style
	style, err := cfg.Configure()
	gt.NoError(t, err)
	gt.Equal(t, style, model.DefaultStyle())
}
