package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/stats"
)

func (c *CLI) statsCommand() *cobra.Command {
	var asJSON, heatmap bool

	cmd := &cobra.Command{
		Use:   "stats <username>",
		Short: "Show a GitHub account's statistics",
		Long: `Fetch one account's public statistics and print them as a stat card.

The card shows power level and rank, stars, commits, contributions, longest
streak, top languages and busiest months.`,
		Example: `  gitroast stats torvalds
  gitroast stats torvalds --heatmap
  gitroast stats torvalds --json | jq .powerLevel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if err := errors.ValidateUsername(username); err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := withDeadline(cmd.Context(), cfg)
			defer cancel()

			prog := newProgress(loggerFromContext(ctx))
			var profile *stats.UserStatistics
			err = withSpinner(ctx, !asJSON, "fetching "+username, func(ctx context.Context) (err error) {
				profile, err = runner.FetchProfile(ctx, username)
				return err
			})
			if err != nil {
				return err
			}
			prog.done("Fetched " + profile.Login)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, profile)
			}
			fmt.Fprintln(out, renderCard(profile))
			if heatmap {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderHeatmap(profile.ContributionCalendar))
			}
			printNextStep("Roast them against someone", fmt.Sprintf("%s compare %s <username>", appName, profile.Login))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	cmd.Flags().BoolVar(&heatmap, "heatmap", false, "also draw the contribution calendar")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
