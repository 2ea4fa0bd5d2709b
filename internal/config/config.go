// Package config loads gitroast settings from a TOML file, an optional
// .env file and the environment, in increasing order of precedence.
//
// The file lives at $XDG_CONFIG_HOME/gitroast/config.toml (falling back to
// ~/.config/gitroast/config.toml) unless a path is given explicitly:
//
//	[github]
//	token = "ghp_..."
//
//	[generator]
//	endpoint    = "https://my-resource.openai.azure.com"
//	api_key     = "..."
//	deployment  = "gpt-4o"
//	temperature = 0.9
//	max_tokens  = 1000
//
//	[server]
//	addr    = ":8080"
//	timeout = "2m"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	apperrors "github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/integrations/github"
	"github.com/matzehuels/gitroast/pkg/integrations/openai"
)

const appName = "gitroast"

// Environment variables that override file settings.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvOpenAIEndpoint = "AZURE_OPENAI_ENDPOINT"
	EnvOpenAIKey      = "AZURE_OPENAI_KEY"
	EnvOpenAIDeploy   = "AZURE_OPENAI_DEPLOYMENT"
	EnvServerAddr     = "GITROAST_ADDR"
)

const (
	DefaultServerAddr = ":8080"
	DefaultTimeout    = 2 * time.Minute

	redacted = "********"
)

// Config is the full application configuration.
type Config struct {
	GitHub    GitHub    `toml:"github"`
	Generator Generator `toml:"generator"`
	Server    Server    `toml:"server"`
}

// GitHub configures the statistics source.
type GitHub struct {
	Token       string `toml:"token"`
	BaseURL     string `toml:"base_url,omitempty"`
	GraphQLURL  string `toml:"graphql_url,omitempty"`
	Concurrency int    `toml:"concurrency,omitempty"`
}

// Generator configures the Azure OpenAI deployment.
type Generator struct {
	Endpoint    string  `toml:"endpoint"`
	APIKey      string  `toml:"api_key"`
	Deployment  string  `toml:"deployment"`
	APIVersion  string  `toml:"api_version"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// Server configures the HTTP API and request deadlines.
type Server struct {
	Addr    string   `toml:"addr"`
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string ("90s", "2m") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generator: Generator{
			APIVersion:  openai.DefaultAPIVersion,
			Temperature: openai.DefaultTemperature,
			MaxTokens:   openai.DefaultMaxTokens,
		},
		Server: Server{
			Addr:    DefaultServerAddr,
			Timeout: Duration{DefaultTimeout},
		},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file is fine
	default:
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the URL settings that are set. Empty URLs fall back to
// the public endpoints and are not checked.
func (c *Config) Validate() error {
	urls := []struct{ field, value string }{
		{"github.base_url", c.GitHub.BaseURL},
		{"github.graphql_url", c.GitHub.GraphQLURL},
		{"generator.endpoint", c.Generator.Endpoint},
	}
	for _, u := range urls {
		if u.value == "" {
			continue
		}
		if err := apperrors.ValidateURL(u.field, u.value); err != nil {
			return err
		}
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from files (".env" when none given)
// into the process environment. Missing files are skipped and variables
// already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment via lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&c.GitHub.Token, EnvGitHubToken)
	set(&c.Generator.Endpoint, EnvOpenAIEndpoint)
	set(&c.Generator.APIKey, EnvOpenAIKey)
	set(&c.Generator.Deployment, EnvOpenAIDeploy)
	set(&c.Server.Addr, EnvServerAddr)
}

// GeneratorConfigured reports whether roast generation can run.
func (c *Config) GeneratorConfigured() bool {
	g := c.Generator
	return g.Endpoint != "" && g.APIKey != "" && g.Deployment != ""
}

// GitHubOptions converts the GitHub section into client options.
func (c *Config) GitHubOptions(logger *log.Logger) github.Options {
	return github.Options{
		Token:       c.GitHub.Token,
		BaseURL:     c.GitHub.BaseURL,
		GraphQLURL:  c.GitHub.GraphQLURL,
		Concurrency: c.GitHub.Concurrency,
		Logger:      logger,
	}
}

// OpenAIOptions converts the generator section into client options.
func (c *Config) OpenAIOptions() openai.Options {
	g := c.Generator
	return openai.Options{
		Endpoint:    g.Endpoint,
		APIKey:      g.APIKey,
		Deployment:  g.Deployment,
		APIVersion:  g.APIVersion,
		Temperature: g.Temperature,
		MaxTokens:   g.MaxTokens,
	}
}

// Redacted returns a copy with secrets masked, for display.
func (c *Config) Redacted() *Config {
	out := *c
	if out.GitHub.Token != "" {
		out.GitHub.Token = redacted
	}
	if out.Generator.APIKey != "" {
		out.Generator.APIKey = redacted
	}
	return &out
}
