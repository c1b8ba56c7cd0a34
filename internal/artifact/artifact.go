// Package artifact maps output paths to image encoders and writes the
// rendered image atomically, so a failed render never leaves a truncated
// file at the destination.
package artifact

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format describes one supported output image format.
type Format struct {
	Ext      string // lowercase extension, including the dot
	Name     string
	Provider chart.RendererProvider
}

var formats = []Format{
	{Ext: ".png", Name: "Portable Network Graphics", Provider: chart.PNG},
	{Ext: ".svg", Name: "Scalable Vector Graphics", Provider: chart.SVG},
}

// Formats returns the supported output formats, ordered by extension.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Exts returns the supported extensions, ordered.
func Exts() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.Ext
	}
	return out
}

// FromPath selects the output format from the path's extension.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range formats {
		if f.Ext == ext {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("artifact: %s has no valid extension; valid extensions are: %s",
		path, strings.Join(Exts(), ", "))
}

// Write renders the image into memory, then writes it to path via a
// temporary file in the same directory and a rename. The parent directory
// is created if missing. On any failure nothing is left at path beyond
// what was already there.
func Write(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("artifact: encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("artifact: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("artifact: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("artifact: move into place: %w", err)
	}
	return nil
}
