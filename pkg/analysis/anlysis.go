package analysis

import (
	"fmt"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
)

// SweepKey is the results key holding the independent variable.
const SweepKey = "SWEEP"

type Analysis interface {
	Setup(model device.Model) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Model   device.Model
	results map[string][]float64 // key: SWEEP or series label
	order   []string
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// StoreSeries records the sweep once and each series under its label.
// Repeated labels get a " (n)" suffix so no series is lost.
func (a *BaseAnalysis) StoreSeries(series []curve.Series) {
	seen := make(map[string]int)
	for _, s := range series {
		if _, exists := a.results[SweepKey]; !exists {
			a.results[SweepKey] = append([]float64{}, s.X...)
			a.order = append(a.order, SweepKey)
		}

		key := s.Label
		if seen[s.Label]++; seen[s.Label] > 1 {
			key = fmt.Sprintf("%s (%d)", s.Label, seen[s.Label])
		}
		if _, exists := a.results[key]; !exists {
			a.order = append(a.order, key)
		}
		a.results[key] = append([]float64{}, s.Y...)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Keys returns result keys in insertion order, SWEEP first.
func (a *BaseAnalysis) Keys() []string {
	return a.order
}
