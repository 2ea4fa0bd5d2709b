package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitroast/internal/api"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve profiles and comparisons over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /api/users/{username}
  POST /api/compare         {"user1": "...", "user2": "..."}
  GET  /api/compare?u1=&u2=
  POST /api/roasts          {"user1": summary, "user2": summary}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if !cfg.GeneratorConfigured() {
				c.Logger.Warn("roast generation is not configured, comparison routes will answer 503")
			}

			srv := api.New(runner, c.Logger, cfg.Server.Timeout.Duration)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
