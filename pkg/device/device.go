package device

import (
	"strings"

	"github.com/edp1096/semisim/pkg/curve"
)

// Model is a stateless analytic device characteristic.
type Model interface {
	GetName() string
	GetType() string
	SetModelParameters(params map[string]float64)
	Simulate(sw curve.Sweep) (*curve.Result, error)
	DefaultSweep() curve.Sweep
}

type BaseDevice struct {
	Name string
}

// ModelParam is a named parameter card, e.g. from a .model line.
type ModelParam struct {
	Type   string
	Name   string
	Params map[string]float64
}

func (d *BaseDevice) GetName() string {
	return d.Name
}

// New creates a model with default parameters from a type letter
// (D, Q, J, N) or a .model type (D, NPN, NJF, NANO).
func New(typ, name string) (Model, bool) {
	switch strings.ToUpper(typ) {
	case "D":
		return NewDiode(name), true
	case "Q", "NPN":
		return NewBJT(name), true
	case "J", "NJF":
		return NewJFET(name), true
	case "N", "NANO":
		return NewNanoParticle(name), true
	}
	return nil, false
}

// Types lists the device types in display order.
func Types() []string {
	return []string{"diode", "bjt", "jfet", "nano"}
}
