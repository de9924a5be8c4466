package device

import (
	"fmt"
	"strings"

	"github.com/edp1096/semisim/internal/consts"
	"github.com/edp1096/semisim/pkg/curve"
)

// CutoffVce is the collector-emitter voltage below which Ic is zero.
const CutoffVce = 0.2

const DefaultSweepPoints = 200

// BJT is a common-emitter output characteristic family.
// Ic is flat above cutoff: no Early effect and no saturation roll-off.
type BJT struct {
	BaseDevice
	Beta float64   // Forward current gain
	Ib   []float64 // Base currents (uA), one curve each
}

func NewBJT(name string) *BJT {
	b := &BJT{BaseDevice: BaseDevice{Name: name}}
	b.setDefaultParameters()
	return b
}

func (b *BJT) GetType() string { return "Q" }

func (b *BJT) setDefaultParameters() {
	b.Beta = 100
	b.Ib = []float64{10, 20, 30, 40, 50}
}

func (b *BJT) DefaultSweep() curve.Sweep {
	return curve.NewSweep(0, 5, DefaultSweepPoints)
}

func (b *BJT) SetModelParameters(params map[string]float64) {
	// Bf (Forward beta)
	if bf, ok := params["bf"]; ok {
		b.Beta = bf
	}
}

// CollectorCurrent returns Ic in amperes for a base current in uA.
func (b *BJT) CollectorCurrent(vce, ibMicro float64) float64 {
	if vce < CutoffVce {
		return 0
	}
	return b.Beta * ibMicro * consts.MICRO
}

// Characteristics returns one series per base current; none when Ib is empty.
func (b *BJT) Characteristics(sw curve.Sweep) []curve.Series {
	vce := sw.Values()
	series := make([]curve.Series, 0, len(b.Ib))
	for _, ib := range b.Ib {
		series = append(series, curve.NewSeries(fmt.Sprintf("Ib = %g µA", ib), vce, func(v float64) float64 {
			return b.CollectorCurrent(v, ib)
		}))
	}
	return series
}

func (b *BJT) Simulate(sw curve.Sweep) (*curve.Result, error) {
	if err := checkSweep(b.Name, sw); err != nil {
		return nil, err
	}
	if len(b.Ib) == 0 {
		return nil, emptySeries(b.Name, "ib")
	}

	ibs := make([]string, len(b.Ib))
	for i, ib := range b.Ib {
		ibs[i] = fmt.Sprintf("%g µA", ib)
	}

	return &curve.Result{
		Title:  "BJT Output Characteristics (Common Emitter)",
		XLabel: "Collector-Emitter Voltage Vce (V)",
		YLabel: "Collector Current Ic (A)",
		Series: b.Characteristics(sw),
		Notes: []string{
			fmt.Sprintf("Output characteristics for base currents: %s.", strings.Join(ibs, ", ")),
			"As the base current Ib increases, the collector current Ic increases.",
			fmt.Sprintf("Beta = %g: a small Ib produces a much larger Ic.", b.Beta),
			fmt.Sprintf("Below Vce = %g V the transistor is cut off (Ic = 0).", CutoffVce),
		},
	}, nil
}
