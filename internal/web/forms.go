package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/edp1096/semisim/internal/config"
	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
	"github.com/edp1096/semisim/pkg/netlist"
	"github.com/edp1096/semisim/pkg/util"
)

type fieldKind string

const (
	kindRange  fieldKind = "range"
	kindNumber fieldKind = "number"
	kindText   fieldKind = "text"
)

// field is one form input. Range fields carry slider bounds, which are
// enforced on submit as well.
type field struct {
	Name  string
	Label string
	Kind  fieldKind
	Min   float64
	Max   float64
	Step  float64
	Value string
}

func (f field) bounded() bool { return f.Kind == kindRange }

// deviceForm describes the inputs of one device page and how to turn a
// submission into a model and a sweep.
type deviceForm struct {
	Title  string
	Button string
	fields func(cfg *config.Config) []field
	build  func(v *values, cfg *config.Config) (device.Model, curve.Sweep, error)
}

var forms = map[string]deviceForm{
	"diode": {
		Title:  "PN Junction Diode Simulation",
		Button: "Simulate Diode",
		fields: func(cfg *config.Config) []field {
			d := cfg.Diode
			return []field{
				rangeField("v_start", "Voltage Start (V)", -2, 0, 0.01, d.Sweep.Start),
				rangeField("v_end", "Voltage End (V)", 0, 2, 0.01, d.Sweep.Stop),
				rangeField("temp", "Temperature (K)", 250, 400, 1, d.Temp),
				numberField("is", "Saturation Current (Is in A)", d.Is),
			}
		},
		build: func(v *values, cfg *config.Config) (device.Model, curve.Sweep, error) {
			d := device.NewDiode("D1")
			sw := curve.NewSweep(v.number("v_start"), v.number("v_end"), cfg.Diode.Sweep.Points)
			d.Temp = v.number("temp")
			d.Is = v.number("is")
			return d, sw, v.err
		},
	},
	"bjt": {
		Title:  "BJT Simulation (Common Emitter Output)",
		Button: "Simulate BJT",
		fields: func(cfg *config.Config) []field {
			b := cfg.BJT
			return []field{
				rangeField("beta", "Current Gain (β)", 50, 300, 1, b.Beta),
				rangeField("vce_start", "Vce Start (V)", 0, 10, 0.1, b.Sweep.Start),
				rangeField("vce_end", "Vce End (V)", 0, 10, 0.1, b.Sweep.Stop),
				textField("ib", "Base Currents (µA, comma-separated)", b.Ib),
			}
		},
		build: func(v *values, cfg *config.Config) (device.Model, curve.Sweep, error) {
			b := device.NewBJT("Q1")
			b.Beta = v.number("beta")
			sw := curve.NewSweep(v.number("vce_start"), v.number("vce_end"), cfg.BJT.Sweep.Points)
			b.Ib = v.list("ib")
			return b, sw, v.err
		},
	},
	"jfet": {
		Title:  "JFET Output Characteristics",
		Button: "Simulate JFET",
		fields: func(cfg *config.Config) []field {
			j := cfg.JFET
			return []field{
				rangeField("vds_start", "Vds Start (V)", 0, 10, 0.1, j.Sweep.Start),
				rangeField("vds_end", "Vds End (V)", 0, 10, 0.1, j.Sweep.Stop),
				textField("vgs", "Gate Voltages Vgs (V, comma-separated)", j.Vgs),
				numberField("idss", "Idss (max drain current at Vgs=0, in A)", j.Idss),
				numberField("vp", "Pinch-Off Voltage (Vp in V)", j.Vp),
			}
		},
		build: func(v *values, cfg *config.Config) (device.Model, curve.Sweep, error) {
			j := device.NewJFET("J1")
			sw := curve.NewSweep(v.number("vds_start"), v.number("vds_end"), cfg.JFET.Sweep.Points)
			j.Vgs = v.list("vgs")
			j.Idss = v.number("idss")
			j.Vp = v.number("vp")
			return j, sw, v.err
		},
	},
	"nano": {
		Title:  "Nanomaterial Band Gap Simulation",
		Button: "Simulate Band Gap",
		fields: func(cfg *config.Config) []field {
			n := cfg.Nano
			return []field{
				rangeField("size_min", "Particle Size Min (nm)", 1, 10, 0.1, n.Sweep.Start),
				rangeField("size_max", "Particle Size Max (nm)", 1, 10, 0.1, n.Sweep.Stop),
				numberField("eg_bulk", "Bulk Band Gap (eV)", n.EgBulk),
				rangeField("alpha", "Quantum Confinement Factor (α)", 0.5, 3, 0.05, n.Alpha),
			}
		},
		build: func(v *values, cfg *config.Config) (device.Model, curve.Sweep, error) {
			n := device.NewNanoParticle("N1")
			sw := curve.NewSweep(v.number("size_min"), v.number("size_max"), cfg.Nano.Sweep.Points)
			n.EgBulk = v.number("eg_bulk")
			n.Alpha = v.number("alpha")
			return n, sw, v.err
		},
	},
}

func rangeField(name, label string, lo, hi, step, value float64) field {
	return field{Name: name, Label: label, Kind: kindRange, Min: lo, Max: hi, Step: step, Value: formatNumber(value)}
}

func numberField(name, label string, value float64) field {
	return field{Name: name, Label: label, Kind: kindNumber, Value: formatNumber(value)}
}

func textField(name, label string, value []float64) field {
	return field{Name: name, Label: label, Kind: kindText, Value: util.FormatFloatList(value)}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// values reads submitted fields, keeping the first error. Missing fields
// fall back to their defaults.
type values struct {
	device string
	form   url.Values
	fields map[string]field
	err    error
}

func newValues(name string, form url.Values, fields []field) *values {
	v := &values{device: name, form: form, fields: make(map[string]field, len(fields))}
	for _, f := range fields {
		v.fields[f.Name] = f
	}
	return v
}

func (v *values) raw(name string) string {
	if s := strings.TrimSpace(v.form.Get(name)); s != "" {
		return s
	}
	return v.fields[name].Value
}

func (v *values) number(name string) float64 {
	if v.err != nil {
		return 0
	}

	raw := v.raw(name)
	x, err := netlist.ParseValue(raw)
	if err != nil {
		v.err = fmt.Errorf("%s: %w", v.fields[name].Label, &util.ParseError{Input: raw, Field: raw, Err: err})
		return 0
	}

	if f := v.fields[name]; f.bounded() && (x < f.Min || x > f.Max) {
		v.err = &device.ParamError{
			Model:  v.device,
			Param:  name,
			Value:  x,
			Reason: fmt.Sprintf("must be within [%g, %g]", f.Min, f.Max),
			Err:    device.ErrInvalidParameter,
		}
		return 0
	}
	return x
}

func (v *values) list(name string) []float64 {
	if v.err != nil {
		return nil
	}

	// An explicitly blank list is kept blank so the model can reject it.
	raw := v.form.Get(name)
	if _, sent := v.form[name]; !sent {
		raw = v.fields[name].Value
	}
	xs, err := util.ParseFloatList(raw)
	if err != nil {
		v.err = fmt.Errorf("%s: %w", v.fields[name].Label, err)
		return nil
	}
	return xs
}

// current returns the fields with the submitted values filled in.
func (v *values) current(fields []field) []field {
	out := make([]field, len(fields))
	for i, f := range fields {
		if s, sent := v.form[f.Name]; sent && len(s) > 0 {
			f.Value = s[0]
		}
		out[i] = f
	}
	return out
}
