package device

import (
	"fmt"
	"math"

	"github.com/edp1096/semisim/internal/consts"
	"github.com/edp1096/semisim/pkg/curve"
)

const DiodeSweepPoints = 500

// Diode is an ideal PN junction following the Shockley equation.
type Diode struct {
	BaseDevice
	// Model parameters
	Is   float64 // Saturation current (A)
	Temp float64 // Junction temperature (K)
}

func NewDiode(name string) *Diode {
	d := &Diode{BaseDevice: BaseDevice{Name: name}}
	d.setDefaultParameters()
	return d
}

func (d *Diode) GetType() string { return "D" }

func (d *Diode) setDefaultParameters() {
	d.Is = 1e-12   // 1 pA
	d.Temp = 300.0 // 300 K
}

func (d *Diode) DefaultSweep() curve.Sweep {
	return curve.NewSweep(-1, 1, DiodeSweepPoints)
}

func (d *Diode) SetModelParameters(params map[string]float64) {
	// Is (Saturation Current)
	if is, ok := params["is"]; ok {
		d.Is = is
	}

	// Temp (Kelvin)
	if temp, ok := params["temp"]; ok {
		d.Temp = temp
	}
}

func (d *Diode) Validate() error {
	if d.Temp <= 0 {
		return invalidParam(d.Name, "temp", d.Temp, "temperature must be > 0 K")
	}
	if d.Is <= 0 {
		return invalidParam(d.Name, "is", d.Is, "saturation current must be > 0 A")
	}
	return nil
}

func (d *Diode) thermalVoltage() float64 {
	return consts.ThermalVoltage(d.Temp)
}

// Current returns Is*(exp(V/Vt)-1). Large forward bias overflows to +Inf.
func (d *Diode) Current(v float64) float64 {
	return d.Is * math.Expm1(v/d.thermalVoltage())
}

// Characteristics computes the I-V curve without validating parameters.
func (d *Diode) Characteristics(sw curve.Sweep) []curve.Series {
	label := fmt.Sprintf("T = %g K", d.Temp)
	return []curve.Series{curve.NewSeries(label, sw.Values(), d.Current)}
}

func (d *Diode) Simulate(sw curve.Sweep) (*curve.Result, error) {
	if err := checkSweep(d.Name, sw); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &curve.Result{
		Title:  "PN Junction Diode I-V Characteristics",
		XLabel: "Voltage (V)",
		YLabel: "Current (A)",
		Series: d.Characteristics(sw),
		RefLines: []curve.RefLine{
			{Orientation: curve.Horizontal, Value: 0, Dashed: true},
			{Orientation: curve.Vertical, Value: 0, Dashed: true},
		},
		Notes: []string{
			"Forward bias (V > 0): the current increases exponentially with voltage.",
			"Reverse bias (V < 0): the current settles at the leakage -Is.",
			fmt.Sprintf("Temperature = %g K: thermal voltage Vt = %.4f V.", d.Temp, d.thermalVoltage()),
			fmt.Sprintf("Saturation current Is = %.1e A: a higher Is means more reverse leakage.", d.Is),
		},
	}, nil
}

func checkSweep(model string, sw curve.Sweep) error {
	if err := sw.Validate(); err != nil {
		return invalidParam(model, "points", float64(sw.Points), fmt.Sprintf("sweep needs 2 to %d points", curve.MaxPoints))
	}
	return nil
}
