package analysis

import (
	"fmt"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
)

// Characteristic sweeps one independent variable across a device model.
type Characteristic struct {
	BaseAnalysis
	sweep  curve.Sweep
	result *curve.Result
}

func NewCharacteristic(start, stop float64, points int) *Characteristic {
	return &Characteristic{
		BaseAnalysis: *NewBaseAnalysis(),
		sweep:        curve.NewSweep(start, stop, points),
	}
}

// NewDefaultCharacteristic uses the model's own default sweep.
func NewDefaultCharacteristic(model device.Model) *Characteristic {
	sw := model.DefaultSweep()
	c := NewCharacteristic(sw.Start, sw.Stop, sw.Points)
	c.Model = model
	return c
}

func (c *Characteristic) Setup(model device.Model) error {
	if model == nil {
		return fmt.Errorf("model not set")
	}
	c.Model = model
	return nil
}

func (c *Characteristic) Execute() error {
	if c.Model == nil {
		return fmt.Errorf("model not set")
	}

	res, err := c.Model.Simulate(c.sweep)
	if err != nil {
		return err
	}

	c.result = res
	c.StoreSeries(res.Series)
	return nil
}

func (c *Characteristic) Sweep() curve.Sweep {
	return c.sweep
}

// Result returns the full result, or nil before Execute succeeds.
func (c *Characteristic) Result() *curve.Result {
	return c.result
}

// Run is Setup followed by Execute.
func Run(model device.Model, sw curve.Sweep) (*Characteristic, error) {
	c := NewCharacteristic(sw.Start, sw.Stop, sw.Points)
	if err := c.Setup(model); err != nil {
		return nil, err
	}
	if err := c.Execute(); err != nil {
		return nil, err
	}
	return c, nil
}
