package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/semisim/pkg/analysis"
	"github.com/edp1096/semisim/pkg/netlist"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <deck>",
		Short: "Simulate every device of a deck file",
		Long: `Parse a deck and compute the curves of each device in it.

Devices without a .dc statement use their default sweep. With an image
format and more than one device, --out names a directory that receives
one file per device.

Example deck:
  diode and bjt
  .model DMOD D(is=1e-14)
  .model QMOD NPN(bf=120)
  D1 DMOD
  Q1 QMOD ib=10u,20u,30u
  .dc D1 -1 0.8 0.01
  .temp 27
  .end`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeck(args[0])
		},
	}
}

func (a *app) runDeck(path string) error {
	// 1. Read deck
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read deck: %w", err)
	}

	// 2. Parse deck
	deck, err := netlist.Parse(string(content))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("deck parsed", "file", path, "title", deck.Title, "elements", len(deck.Elements))

	// 3. Create devices
	devices, err := deck.CreateDevices()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(devices) == 0 {
		return fmt.Errorf("%s: no devices", path)
	}

	// 4. Run analyses
	results := make([]*analysis.Characteristic, 0, len(devices))
	for _, dev := range devices {
		c, err := a.characterize(dev, deck.SweepFor(dev.GetName(), dev))
		if err != nil {
			return err
		}
		results = append(results, c)
	}

	// 5. Print results
	return a.write(results)
}
