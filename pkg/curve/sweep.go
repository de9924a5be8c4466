package curve

import (
	"errors"
	"fmt"
)

// ErrInvalidSweep is returned for sweeps that cannot be sampled.
var ErrInvalidSweep = errors.New("invalid sweep")

// MaxPoints caps the samples of a single sweep.
const MaxPoints = 1_000_000

// Sweep is an inclusive interval over an independent variable.
type Sweep struct {
	Start  float64 `json:"start" yaml:"start"`
	Stop   float64 `json:"stop" yaml:"stop"`
	Points int     `json:"points" yaml:"points"`
}

func NewSweep(start, stop float64, points int) Sweep {
	return Sweep{Start: start, Stop: stop, Points: points}
}

// Validate only checks the sample count. Start > Stop is allowed and
// produces a descending sweep.
func (s Sweep) Validate() error {
	if s.Points < 2 || s.Points > MaxPoints {
		return fmt.Errorf("%w: points must be within [2, %d], got %d", ErrInvalidSweep, MaxPoints, s.Points)
	}
	return nil
}

// Min returns the smaller endpoint.
func (s Sweep) Min() float64 {
	if s.Start < s.Stop {
		return s.Start
	}
	return s.Stop
}

// Values returns Points evenly spaced samples including both endpoints.
func (s Sweep) Values() []float64 {
	return Linspace(s.Start, s.Stop, s.Points)
}

// Linspace returns n evenly spaced values over [start, stop].
// The last sample is exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	values := make([]float64, n)
	if n == 1 {
		values[0] = start
		return values
	}

	step := (stop - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	values[n-1] = stop
	return values
}
