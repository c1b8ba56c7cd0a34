package plot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme controls the chart appearance. Zero fields fall back to the
// defaults, so a theme file only needs to name what it overrides.
type Theme struct {
	// Width and Height are the image dimensions in pixels.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// LineWidth is the stroke width of the RMSD line.
	LineWidth float64 `yaml:"line_width" json:"line_width"`

	// XLabel and YLabel are the axis captions.
	XLabel string `yaml:"x_label" json:"x_label"`
	YLabel string `yaml:"y_label" json:"y_label"`
}

// DefaultTheme matches the historical plot dimensions and axis captions.
func DefaultTheme() Theme {
	return Theme{
		Width:     1500,
		Height:    1200,
		LineWidth: 2,
		XLabel:    "Frame",
		YLabel:    "RMSD (Å)",
	}
}

// LoadTheme reads a theme file (YAML or JSON, detected by extension) and
// fills unset fields from DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("plot: read theme: %w", err)
	}

	var t Theme
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return Theme{}, fmt.Errorf("plot: parse theme yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &t); err != nil {
			return Theme{}, fmt.Errorf("plot: parse theme json: %w", err)
		}
	default:
		return Theme{}, fmt.Errorf("plot: theme %s: unsupported extension %q (use .yaml, .yml or .json)", path, ext)
	}

	def := DefaultTheme()
	if t.Width == 0 {
		t.Width = def.Width
	}
	if t.Height == 0 {
		t.Height = def.Height
	}
	if t.LineWidth == 0 {
		t.LineWidth = def.LineWidth
	}
	if t.XLabel == "" {
		t.XLabel = def.XLabel
	}
	if t.YLabel == "" {
		t.YLabel = def.YLabel
	}
	return t, nil
}
