package device

import (
	"fmt"

	"github.com/edp1096/semisim/pkg/curve"
)

// NanoParticle models the band gap of a quantum-confined particle:
// Eg(size) = EgBulk + Alpha/size^2, size in nm.
type NanoParticle struct {
	BaseDevice
	EgBulk float64 // Bulk band gap (eV)
	Alpha  float64 // Confinement factor (eV*nm^2)
}

func NewNanoParticle(name string) *NanoParticle {
	n := &NanoParticle{BaseDevice: BaseDevice{Name: name}}
	n.setDefaultParameters()
	return n
}

func (n *NanoParticle) GetType() string { return "N" }

func (n *NanoParticle) setDefaultParameters() {
	n.EgBulk = 1.1 // Silicon
	n.Alpha = 1.5
}

func (n *NanoParticle) DefaultSweep() curve.Sweep {
	return curve.NewSweep(1, 10, DefaultSweepPoints)
}

func (n *NanoParticle) SetModelParameters(params map[string]float64) {
	// Eg (Bulk band gap)
	if eg, ok := params["eg"]; ok {
		n.EgBulk = eg
	}

	// Alpha (Confinement factor)
	if alpha, ok := params["alpha"]; ok {
		n.Alpha = alpha
	}
}

func (n *NanoParticle) Validate() error {
	if n.Alpha <= 0 {
		return invalidParam(n.Name, "alpha", n.Alpha, "confinement factor must be > 0")
	}
	return nil
}

// BandGap returns the confined band gap in eV for a size in nm.
func (n *NanoParticle) BandGap(size float64) float64 {
	return n.EgBulk + n.Alpha/(size*size)
}

func (n *NanoParticle) Characteristics(sw curve.Sweep) []curve.Series {
	return []curve.Series{curve.NewSeries("Band Gap", sw.Values(), n.BandGap)}
}

func (n *NanoParticle) Simulate(sw curve.Sweep) (*curve.Result, error) {
	if err := checkSweep(n.Name, sw); err != nil {
		return nil, err
	}
	if smallest := sw.Min(); smallest <= 0 {
		return nil, invalidParam(n.Name, "size", smallest, "particle size must be > 0 nm")
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	return &curve.Result{
		Title:  "Band Gap vs Nanoparticle Size",
		XLabel: "Size (nm)",
		YLabel: "Band Gap (eV)",
		Series: n.Characteristics(sw),
		RefLines: []curve.RefLine{
			{Orientation: curve.Horizontal, Value: n.EgBulk, Label: "Bulk Band Gap", Dashed: true},
		},
		Notes: []string{
			"Quantum confinement: smaller particles have larger band gaps.",
			fmt.Sprintf("Bulk band gap = %g eV, reached as the size grows.", n.EgBulk),
			"As the size decreases the band gap increases due to energy quantization.",
			"Relevant for LEDs, solar cells and quantum dots.",
		},
	}, nil
}
