package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitroast/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gitroast compares GitHub profiles and roasts the loser",
		Long:         `gitroast fetches public GitHub statistics for two accounts, scores them, and asks a language model for a round of comparative roasts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gitroast/config.toml)")
	flags.StringSliceVar(&c.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	flags.DurationVar(&c.timeout, "timeout", 0, "deadline for a whole request (default from config, 2m)")

	root.AddCommand(c.statsCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
