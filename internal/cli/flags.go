package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/netlist"
	"github.com/edp1096/semisim/pkg/util"
)

// Numeric flags are strings so that SPICE suffixes (10m, 1p) work. An
// unset flag falls back to the configured default.

func addSweepFlags(cmd *cobra.Command, unit string) {
	cmd.Flags().String("start", "", "sweep start in "+unit)
	cmd.Flags().String("stop", "", "sweep stop in "+unit)
	cmd.Flags().Int("points", 0, "number of samples")
}

func sweepFlags(cmd *cobra.Command, def curve.Sweep) (curve.Sweep, error) {
	sw := def
	var err error
	if sw.Start, err = valueFlag(cmd, "start", def.Start); err != nil {
		return sw, err
	}
	if sw.Stop, err = valueFlag(cmd, "stop", def.Stop); err != nil {
		return sw, err
	}
	if cmd.Flags().Changed("points") {
		sw.Points, _ = cmd.Flags().GetInt("points")
	}
	return sw, nil
}

func valueFlag(cmd *cobra.Command, name string, def float64) (float64, error) {
	if !cmd.Flags().Changed(name) {
		return def, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	v, err := netlist.ParseValue(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, &util.ParseError{Input: raw, Field: raw, Err: err})
	}
	return v, nil
}

func listFlag(cmd *cobra.Command, name string, def []float64) ([]float64, error) {
	if !cmd.Flags().Changed(name) {
		return append([]float64{}, def...), nil
	}
	raw, _ := cmd.Flags().GetString(name)
	values, err := util.ParseFloatList(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return values, nil
}
