package netlist

import (
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/semisim/internal/consts"
	"github.com/edp1096/semisim/pkg/device"
)

// listParams are instance parameters holding one value per curve.
var listParams = map[string]string{
	"Q": "ib",
	"J": "vgs",
}

func CreateDevice(elem Element, models map[string]device.ModelParam) (device.Model, error) {
	dev, ok := device.New(elem.Type, elem.Name)
	if !ok {
		return nil, fmt.Errorf("unsupported element type %s for %s", elem.Type, elem.Name)
	}

	model, exists := models[strings.ToUpper(elem.Model)]
	if !exists {
		return nil, fmt.Errorf("undefined model for %s: %s", elem.Name, elem.Model)
	}
	if modelTypes[model.Type] != elem.Type {
		return nil, fmt.Errorf("invalid model type for %s: %s", elem.Name, model.Type)
	}
	dev.SetModelParameters(model.Params)

	// Instance parameters override the model card
	params := make(map[string]float64)
	for name, raw := range elem.Params {
		if name == listParams[elem.Type] {
			values, err := ParseValueList(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid %s: %w", elem.Name, name, err)
			}
			setList(dev, values)
			continue
		}
		v, err := ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid %s: %w", elem.Name, name, err)
		}
		params[name] = v
	}
	dev.SetModelParameters(params)

	return dev, nil
}

func setList(dev device.Model, values []float64) {
	switch d := dev.(type) {
	case *device.BJT:
		// Deck values are amperes; the model takes uA, rounded so that
		// 20u reads back as 20 in labels.
		ib := make([]float64, len(values))
		for i, v := range values {
			ib[i] = math.Round(v/consts.MICRO*1e9) / 1e9
		}
		d.Ib = ib
	case *device.JFET:
		d.Vgs = values
	}
}

// CreateDevices builds every element of the deck. A .temp statement
// applies to diodes that set no temperature themselves.
func (n *NetlistData) CreateDevices() ([]device.Model, error) {
	if err := n.checkSweeps(); err != nil {
		return nil, err
	}

	devices := make([]device.Model, 0, len(n.Elements))
	for _, elem := range n.Elements {
		dev, err := CreateDevice(elem, n.Models)
		if err != nil {
			return nil, &ParseError{Line: elem.Line, Text: elem.Name, Err: err}
		}
		if d, ok := dev.(*device.Diode); ok && n.HasTemp && !n.setsTemp(elem) {
			d.Temp = n.Temp
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

func (n *NetlistData) setsTemp(elem Element) bool {
	if _, ok := elem.Params["temp"]; ok {
		return true
	}
	_, ok := n.Models[strings.ToUpper(elem.Model)].Params["temp"]
	return ok
}

// checkSweeps reports the first .dc statement naming no element.
func (n *NetlistData) checkSweeps() error {
	names := make(map[string]bool, len(n.Elements))
	for _, elem := range n.Elements {
		names[strings.ToUpper(elem.Name)] = true
	}

	var first *ParseError
	for name, p := range n.Sweeps {
		if names[name] || (first != nil && first.Line < p.Line) {
			continue
		}
		first = &ParseError{Line: p.Line, Text: ".dc " + name, Err: fmt.Errorf("undefined element %s", name)}
	}
	if first != nil {
		return first
	}
	return nil
}
