package device

import (
	"fmt"
	"strings"

	"github.com/edp1096/semisim/pkg/curve"
)

// JFET is the square-law n-channel JFET output characteristic family.
type JFET struct {
	BaseDevice
	Vgs  []float64 // Gate-source voltages (V), one curve each
	Idss float64   // Drain current at Vgs=0 in saturation (A)
	Vp   float64   // Pinch-off voltage (V), negative for n-channel
}

func NewJFET(name string) *JFET {
	j := &JFET{BaseDevice: BaseDevice{Name: name}}
	j.setDefaultParameters()
	return j
}

func (j *JFET) GetType() string { return "J" }

func (j *JFET) setDefaultParameters() {
	j.Vgs = []float64{-1, -2, -3}
	j.Idss = 10e-3
	j.Vp = -4.0
}

func (j *JFET) DefaultSweep() curve.Sweep {
	return curve.NewSweep(0, 10, DefaultSweepPoints)
}

func (j *JFET) SetModelParameters(params map[string]float64) {
	// Idss
	if idss, ok := params["idss"]; ok {
		j.Idss = idss
	}

	// Vto (Pinch-off voltage)
	if vto, ok := params["vto"]; ok {
		j.Vp = vto
	}
}

func (j *JFET) Validate() error {
	if j.Vp == 0 {
		return invalidParam(j.Name, "vp", j.Vp, "pinch-off voltage must be non-zero")
	}
	return nil
}

// DrainCurrent evaluates the region for a single (Vgs, Vds) point.
func (j *JFET) DrainCurrent(vgs, vds float64) float64 {
	// Channel pinched off
	if vgs <= j.Vp {
		return 0
	}

	overdrive := vgs - j.Vp
	k := 1 - vgs/j.Vp
	idsat := j.Idss * k * k

	// Ohmic region
	if vds < overdrive {
		return idsat * (vds / overdrive)
	}

	// Saturation region
	return idsat
}

func (j *JFET) Characteristics(sw curve.Sweep) []curve.Series {
	vds := sw.Values()
	series := make([]curve.Series, 0, len(j.Vgs))
	for _, vgs := range j.Vgs {
		series = append(series, curve.NewSeries(fmt.Sprintf("Vgs = %g V", vgs), vds, func(v float64) float64 {
			return j.DrainCurrent(vgs, v)
		}))
	}
	return series
}

func (j *JFET) Simulate(sw curve.Sweep) (*curve.Result, error) {
	if err := checkSweep(j.Name, sw); err != nil {
		return nil, err
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if len(j.Vgs) == 0 {
		return nil, emptySeries(j.Name, "vgs")
	}

	vgs := make([]string, len(j.Vgs))
	for i, v := range j.Vgs {
		vgs[i] = fmt.Sprintf("%g", v)
	}

	return &curve.Result{
		Title:  "JFET Output Characteristics",
		XLabel: "Vds (V)",
		YLabel: "Id (A)",
		Series: j.Characteristics(sw),
		RefLines: []curve.RefLine{
			{Orientation: curve.Horizontal, Value: 0, Dashed: true},
			{Orientation: curve.Vertical, Value: 0, Dashed: true},
		},
		Notes: []string{
			fmt.Sprintf("Vgs values = %s V.", strings.Join(vgs, ", ")),
			"As Vgs becomes more negative the channel narrows and Id decreases.",
			fmt.Sprintf("At pinch-off (Vgs <= Vp = %g V) the drain current is zero.", j.Vp),
			"Each curve rises linearly in the ohmic region and flattens in saturation at Vds = Vgs - Vp.",
		},
	}, nil
}
