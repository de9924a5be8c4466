package cli

import (
	"github.com/spf13/cobra"

	"github.com/edp1096/semisim/pkg/device"
)

func newDiodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diode",
		Short: "PN junction diode I-V curve",
		Long: `Compute I = Is * (exp(V/Vt) - 1) over a voltage sweep.

Examples:
  semisim diode
  semisim diode --start -1 --stop 0.8 --temp 350
  semisim diode --is 1p --format png --out diode.png`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := a.cfg.Diode
			sw, err := sweepFlags(cmd, def.Sweep)
			if err != nil {
				return err
			}
			d := device.NewDiode("D1")
			if d.Temp, err = valueFlag(cmd, "temp", def.Temp); err != nil {
				return err
			}
			if d.Is, err = valueFlag(cmd, "is", def.Is); err != nil {
				return err
			}
			return a.simulate(d, sw)
		},
	}
	addSweepFlags(cmd, "V")
	cmd.Flags().String("temp", "", "temperature in K")
	cmd.Flags().String("is", "", "saturation current in A")
	return cmd
}

func newBJTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bjt",
		Short: "BJT common-emitter output curves",
		Long: `Compute Ic = beta * Ib over a Vce sweep, one curve per base current.
Below 0.2 V the transistor is treated as cut off.

Examples:
  semisim bjt
  semisim bjt --beta 150 --ib "10, 20, 30"`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := a.cfg.BJT
			sw, err := sweepFlags(cmd, def.Sweep)
			if err != nil {
				return err
			}
			b := device.NewBJT("Q1")
			if b.Beta, err = valueFlag(cmd, "beta", def.Beta); err != nil {
				return err
			}
			if b.Ib, err = listFlag(cmd, "ib", def.Ib); err != nil {
				return err
			}
			return a.simulate(b, sw)
		},
	}
	addSweepFlags(cmd, "V")
	cmd.Flags().String("beta", "", "current gain")
	cmd.Flags().String("ib", "", "comma separated base currents in uA")
	return cmd
}

func newJFETCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jfet",
		Short: "JFET output curves",
		Long: `Compute Id over a Vds sweep, one curve per gate-source voltage.

Examples:
  semisim jfet
  semisim jfet --vgs "-1,-2,-3" --idss 10m --vp -4`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := a.cfg.JFET
			sw, err := sweepFlags(cmd, def.Sweep)
			if err != nil {
				return err
			}
			j := device.NewJFET("J1")
			if j.Vgs, err = listFlag(cmd, "vgs", def.Vgs); err != nil {
				return err
			}
			if j.Idss, err = valueFlag(cmd, "idss", def.Idss); err != nil {
				return err
			}
			if j.Vp, err = valueFlag(cmd, "vp", def.Vp); err != nil {
				return err
			}
			return a.simulate(j, sw)
		},
	}
	addSweepFlags(cmd, "V")
	cmd.Flags().String("vgs", "", "comma separated gate-source voltages in V")
	cmd.Flags().String("idss", "", "saturation drain current in A")
	cmd.Flags().String("vp", "", "pinch-off voltage in V")
	return cmd
}

func newNanoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nano",
		Short: "Nanoparticle band gap vs size",
		Long: `Compute Eg = EgBulk + alpha / size^2 over a size sweep in nm.

Examples:
  semisim nano
  semisim nano --start 2 --stop 8 --alpha 2`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def := a.cfg.Nano
			sw, err := sweepFlags(cmd, def.Sweep)
			if err != nil {
				return err
			}
			n := device.NewNanoParticle("N1")
			if n.EgBulk, err = valueFlag(cmd, "egbulk", def.EgBulk); err != nil {
				return err
			}
			if n.Alpha, err = valueFlag(cmd, "alpha", def.Alpha); err != nil {
				return err
			}
			return a.simulate(n, sw)
		},
	}
	addSweepFlags(cmd, "nm")
	cmd.Flags().String("egbulk", "", "bulk band gap in eV")
	cmd.Flags().String("alpha", "", "confinement coefficient")
	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}
