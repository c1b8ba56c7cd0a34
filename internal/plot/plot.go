// Package plot composes the RMSD line chart.
package plot

import (
	"errors"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rmsdplot/internal/dat"
)

// ErrEmptySeries is returned when there is nothing to plot.
var ErrEmptySeries = errors.New("plot: empty series")

// Line builds a 2-D line chart of the series: frames on the x-axis, RMSD
// on the y-axis, title used verbatim as the heading.
func Line(s dat.Series, title string, color drawing.Color, th Theme) (*chart.Chart, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	xs := s.Frames()
	ys := s.Values()

	style := chart.Style{
		StrokeColor: color,
		StrokeWidth: th.LineWidth,
	}
	if len(s) == 1 {
		// A one-segment line through a single point draws nothing;
		// render the datum as a dot instead.
		style.DotColor = color
		style.DotWidth = 4
	}

	ch := &chart.Chart{
		Title:  title,
		Width:  th.Width,
		Height: th.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: th.XLabel},
		YAxis: chart.YAxis{Name: th.YLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "RMSD",
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	}

	// The renderer rejects zero-width data ranges (single frame, or a
	// perfectly flat RMSD trace), so degenerate extents get an explicit
	// padded range.
	if r := paddedRange(xs); r != nil {
		ch.XAxis.Range = r
	}
	if r := paddedRange(ys); r != nil {
		ch.YAxis.Range = r
	}

	return ch, nil
}

// paddedRange returns an explicit range when all values are equal, padded
// symmetrically so the axis has nonzero extent. Otherwise nil: the library
// derives the range from the data.
func paddedRange(vals []float64) *chart.ContinuousRange {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min != max {
		return nil
	}
	pad := 0.05 * min
	if pad < 0 {
		pad = -pad
	}
	if pad == 0 {
		pad = 0.5
	}
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}
