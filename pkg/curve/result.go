package curve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFinite is returned when a series holds NaN or Inf samples.
	ErrNonFinite = errors.New("non-finite sample")

	// ErrNoSeries is returned for a result with nothing to draw.
	ErrNoSeries = errors.New("result has no series")
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Series is one plotted curve. X and Y are co-indexed.
type Series struct {
	Label string    `json:"label"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// RefLine is a rendering hint for an axis-parallel line.
type RefLine struct {
	Orientation Orientation `json:"orientation"`
	Value       float64     `json:"value"`
	Label       string      `json:"label,omitempty"`
	Dashed      bool        `json:"dashed"`
}

// Result is what a model hands to a renderer.
type Result struct {
	Title    string    `json:"title"`
	XLabel   string    `json:"x_label"`
	YLabel   string    `json:"y_label"`
	Series   []Series  `json:"series"`
	RefLines []RefLine `json:"ref_lines,omitempty"`
	Notes    []string  `json:"notes,omitempty"`
}

func NewSeries(label string, x []float64, fn func(float64) float64) Series {
	xs := append([]float64(nil), x...)
	y := make([]float64, len(xs))
	for i, v := range xs {
		y[i] = fn(v)
	}
	return Series{Label: label, X: xs, Y: y}
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.X) }

// Validate checks that a series is plottable.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: x has %d samples, y has %d", s.Label, len(s.X), len(s.Y))
	}
	for i := range s.X {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) {
			return fmt.Errorf("%w: series %q at index %d (x=%g, y=%g)", ErrNonFinite, s.Label, i, s.X[i], s.Y[i])
		}
	}
	return nil
}

// Validate checks every series before it reaches a renderer.
func (r *Result) Validate() error {
	if r == nil {
		return errors.New("nil result")
	}
	if len(r.Series) == 0 {
		return ErrNoSeries
	}
	for _, s := range r.Series {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the data extent across all series.
func (r *Result) Bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range r.Series {
		for i := range s.X {
			xmin = math.Min(xmin, s.X[i])
			xmax = math.Max(xmax, s.X[i])
			ymin = math.Min(ymin, s.Y[i])
			ymax = math.Max(ymax, s.Y[i])
		}
	}
	return xmin, xmax, ymin, ymax
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
