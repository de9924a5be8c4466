package consts

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // 0 degC in Kelvin (K)
	MICRO     = 1e-6          // uA -> A
)

// ThermalVoltage returns kT/q in volts.
func ThermalVoltage(temp float64) float64 {
	return BOLTZMANN * temp / CHARGE
}
