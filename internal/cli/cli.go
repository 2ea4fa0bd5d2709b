// Package cli implements the gitroast command-line interface.
//
// # Commands
//
//   - stats: fetch one account and print its stat card
//   - compare: fetch two accounts and roast them against each other
//   - serve: run the HTTP API
//   - config: inspect the resolved configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// owned by [CLI] and also travels on the command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitroast/internal/config"
	"github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/integrations/github"
	"github.com/matzehuels/gitroast/pkg/integrations/openai"
	"github.com/matzehuels/gitroast/pkg/pipeline"
)

const appName = "gitroast"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	envFiles   []string
	timeout    time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig resolves .env files, the TOML file and environment overrides,
// then applies command-line overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(c.envFiles...); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "Failed to load environment file")
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "Failed to load configuration")
	}
	if c.timeout > 0 {
		cfg.Server.Timeout.Duration = c.timeout
	}
	c.Logger.Debug("config loaded", "github_token", cfg.GitHub.Token != "", "generator", cfg.GeneratorConfigured())
	return cfg, nil
}

// newRunner wires the GitHub client and, when configured, the generator.
func (c *CLI) newRunner(cfg *config.Config) (*pipeline.Runner, error) {
	src, err := github.NewClient(cfg.GitHubOptions(c.Logger))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, err, "Invalid GitHub settings")
	}
	if cfg.GitHub.Token == "" {
		c.Logger.Warn("no GitHub token set, anonymous requests are heavily rate limited", "env", config.EnvGitHubToken)
	}

	var gen pipeline.Generator
	if cfg.GeneratorConfigured() {
		client, err := openai.NewClient(cfg.OpenAIOptions())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfig, err, "Invalid generator settings")
		}
		gen = client
	}
	return pipeline.NewRunner(src, gen, c.Logger), nil
}

// withDeadline bounds ctx by the configured request timeout.
func withDeadline(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	if d := cfg.Server.Timeout.Duration; d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}
