package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/pillar-calculator/internal/api"
	"github.com/rpgo/pillar-calculator/internal/config"
	"github.com/rpgo/pillar-calculator/internal/infra/logger"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(cfg, root.engine(), logger.L())
			cmd.Printf("Listening on %s\n", cfg.Addr)
			return api.Serve(ctx, srv, logger.L())
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides PILLAR_API_ADDR)")
	return c
}
