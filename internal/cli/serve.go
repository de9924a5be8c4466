package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edp1096/semisim/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the interactive device form",
		Long: `Start the local web form.

Examples:
  semisim serve              # Listen on the configured address (default :8080)
  semisim serve --addr :3000`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}

			// Create context that cancels on interrupt
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return web.NewServer(a.cfg, a.logger).Start(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	return cmd
}

