// Package dat reads whitespace-delimited RMSD trajectory files.
//
// A .dat file holds one data row per line: the first column is the frame
// (or time) axis, the second column is the RMSD value. Extra columns are
// tolerated. The format is owned by the trajectory-analysis tool that
// produced the file, not by this package.
package dat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"rmsdplot/internal/logging"
)

// Point is one sample of the trajectory: the frame (or time) value and the
// RMSD measured at it.
type Point struct {
	Frame float64
	RMSD  float64
}

// Series is the ordered sequence of points read from a .dat file.
type Series []Point

// Frames returns the frame column as a slice, in file order.
func (s Series) Frames() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Frame
	}
	return out
}

// Values returns the RMSD column as a slice, in file order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.RMSD
	}
	return out
}

// ParseError reports a data line that could not be interpreted as numbers.
type ParseError struct {
	Path string
	Line int // 1-based
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse %q as numeric data", e.Path, e.Line, e.Text)
}

// ErrNoData is returned when a file contains no usable data rows (empty,
// header-only, or every row carried a missing value).
var ErrNoData = errors.New("no data rows")

// missing is the token the trajectory tool writes for an absent value.
const missing = "NA"

// Read opens path and parses it with Parse.
func Read(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dat: open input: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a .dat stream. path is used only for error messages and logs.
//
// Blank lines and lines starting with '#' or '@' (header and xmgrace
// directives) are skipped. Rows containing the NA token or a NaN value in
// any column are dropped, matching the producing tool's missing-value
// convention. Any other non-numeric token fails with a *ParseError for the
// offending line. Zero usable rows fail with ErrNoData.
func Parse(r io.Reader, path string) (Series, error) {
	var (
		series  Series
		dropped int
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Path: path, Line: lineNo, Text: line}
		}

		var (
			vals [2]float64
			skip bool
		)
		for i, field := range fields {
			if field == missing {
				skip = true
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Text: line}
			}
			if math.IsNaN(v) {
				skip = true
				continue
			}
			if i < 2 {
				vals[i] = v
			}
		}
		if skip {
			dropped++
			continue
		}
		series = append(series, Point{Frame: vals[0], RMSD: vals[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dat: read %s: %w", path, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("dat: %s: %w", path, ErrNoData)
	}

	logging.New("dat").Info("RMSD values extracted",
		"rows", len(series), "dropped", dropped, "path", path)
	return series, nil
}
