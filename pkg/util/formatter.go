package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case math.IsInf(value, 0) || math.IsNaN(value):
		return fmt.Sprintf("%v %s", value, unit)
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3e %s", value, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// UnitFromLabel extracts "A" from "Current (A)". Empty when absent.
func UnitFromLabel(label string) string {
	end := len(label) - 1
	if end < 0 || label[end] != ')' {
		return ""
	}
	for i := end - 1; i >= 0; i-- {
		if label[i] == '(' {
			return label[i+1 : end]
		}
	}
	return ""
}
