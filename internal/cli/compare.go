package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gitroast/internal/config"
	"github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/pipeline"
	"github.com/matzehuels/gitroast/pkg/roast"
	"github.com/matzehuels/gitroast/pkg/stats"
)

type compareOptions struct {
	asJSON      bool
	interactive bool
	fillers     bool
}

// fillerReport is the JSON shape of a comparison made without a generator.
type fillerReport struct {
	User1   *stats.UserStatistics `json:"user1"`
	User2   *stats.UserStatistics `json:"user2"`
	Fillers map[string][]string   `json:"fillers"`
}

func (c *CLI) compareCommand() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare <user1> <user2>",
		Short: "Compare two GitHub accounts and roast the loser",
		Long: `Fetch both accounts concurrently, score them, and ask the configured
Azure OpenAI deployment for a round of comparative roasts.

Without a configured generator, --fillers still prints the comparison table
with canned one-liners for each account.`,
		Example: `  gitroast compare alice bob
  gitroast compare alice bob --interactive
  gitroast compare alice bob --fillers`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user1, user2 := args[0], args[1]
			if err := errors.ValidateUsernamePair(user1, user2); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidUsername, err, errors.MsgInvalidUsernames)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}

			if !cfg.GeneratorConfigured() {
				if !opts.fillers {
					return errors.New(errors.ErrCodeConfig, "Roast generation needs %s, %s and %s",
						config.EnvOpenAIEndpoint, config.EnvOpenAIKey, config.EnvOpenAIDeploy)
				}
				if !opts.asJSON {
					printWarning("roast generation is not configured, showing filler roasts only")
				}
				return c.compareFillers(cmd, cfg, runner, user1, user2, opts)
			}
			return c.compareFull(cmd, cfg, runner, user1, user2, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the comparison as JSON")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "page through roasts in a terminal viewer")
	cmd.Flags().BoolVar(&opts.fillers, "fillers", false, "add canned one-liners for each account")

	return cmd
}

func (c *CLI) compareFull(cmd *cobra.Command, cfg *config.Config, runner *pipeline.Runner, user1, user2 string, opts compareOptions) error {
	ctx, cancel := withDeadline(cmd.Context(), cfg)
	defer cancel()

	prog := newProgress(loggerFromContext(ctx))
	var cmp *pipeline.Comparison
	err := withSpinner(ctx, !opts.asJSON, fmt.Sprintf("comparing %s and %s", user1, user2), func(ctx context.Context) (err error) {
		cmp, err = runner.Compare(ctx, user1, user2)
		return err
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compared %s and %s", cmp.User1.Login, cmp.User2.Login))

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return writeJSON(out, cmp)
	}

	if opts.interactive {
		title := fmt.Sprintf("%s vs %s", cmp.User1.Name, cmp.User2.Name)
		// The viewer outlives the fetch deadline, so it gets the command context.
		_, err := tea.NewProgram(newRoastViewer(title, cmp.Roasts), tea.WithContext(cmd.Context())).Run()
		return err
	}

	fmt.Fprintln(out, renderComparison(cmp.User1, cmp.User2))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderRoasts(cmp.Roasts))
	if opts.fillers {
		printFillers(out, cmp.User1, cmp.User2)
	}
	return nil
}

func (c *CLI) compareFillers(cmd *cobra.Command, cfg *config.Config, runner *pipeline.Runner, user1, user2 string, opts compareOptions) error {
	ctx, cancel := withDeadline(cmd.Context(), cfg)
	defer cancel()

	var p1, p2 *stats.UserStatistics
	err := withSpinner(ctx, !opts.asJSON, fmt.Sprintf("fetching %s and %s", user1, user2), func(ctx context.Context) error {
		var g errgroup.Group
		g.Go(func() (err error) {
			p1, err = runner.FetchProfile(ctx, user1)
			return err
		})
		g.Go(func() (err error) {
			p2, err = runner.FetchProfile(ctx, user2)
			return err
		})
		return g.Wait()
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return writeJSON(out, fillerReport{
			User1: p1,
			User2: p2,
			Fillers: map[string][]string{
				p1.Login: roast.Fillers(p1, roast.RandomPicker),
				p2.Login: roast.Fillers(p2, roast.RandomPicker),
			},
		})
	}

	fmt.Fprintln(out, renderComparison(p1, p2))
	printFillers(out, p1, p2)
	return nil
}

func printFillers(w io.Writer, profiles ...*stats.UserStatistics) {
	for _, p := range profiles {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderFillers(p, roast.RandomPicker))
	}
}
