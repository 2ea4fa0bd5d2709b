package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	gh "github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"

	"github.com/matzehuels/gitroast/pkg/buildinfo"
	apperrors "github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/integrations"
)

// DefaultConcurrency bounds the per-repository fan-out of one aggregator.
const DefaultConcurrency = 10

// Options configures a [Client]. The zero value talks to api.github.com
// anonymously.
type Options struct {
	Token string

	// BaseURL overrides the REST endpoint (e.g. an httptest server).
	BaseURL string
	// GraphQLURL overrides the GraphQL endpoint.
	GraphQLURL string
	// Transport is the underlying round tripper. Nil means the default.
	Transport http.RoundTripper

	Logger *log.Logger

	// Concurrency caps in-flight per-repository requests. Zero means
	// DefaultConcurrency.
	Concurrency int
}

// Client fetches user, repository and calendar data. It is built once and
// shared read-only by every aggregation.
type Client struct {
	rest        *gh.Client
	graph       *githubv4.Client
	logger      *log.Logger
	concurrency int
}

// NewClient builds a client from opts.
func NewClient(opts Options) (*Client, error) {
	hc := integrations.NewHTTPClient(integrations.ClientOptions{
		Token: opts.Token,
		Base:  opts.Transport,
	})

	rest := gh.NewClient(hc)
	rest.UserAgent = buildinfo.UserAgent()
	if opts.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		rest.BaseURL = u
	}

	graph := githubv4.NewClient(hc)
	if opts.GraphQLURL != "" {
		graph = githubv4.NewEnterpriseClient(opts.GraphQLURL, hc)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Client{
		rest:        rest,
		graph:       graph,
		logger:      logger,
		concurrency: concurrency,
	}, nil
}

// FetchUser returns the identity and counters for username.
func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	u, _, err := c.rest.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, classify(err))
	}

	name := u.GetName()
	if name == "" {
		name = u.GetLogin()
	}
	return &User{
		Login:       u.GetLogin(),
		Name:        name,
		AvatarURL:   u.GetAvatarURL(),
		Bio:         u.GetBio(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		PublicRepos: u.GetPublicRepos(),
	}, nil
}

// listRepos fetches one page of the user's repository listing.
func (c *Client) listRepos(ctx context.Context, username string, opts *gh.RepositoryListByUserOptions) ([]Repo, error) {
	repos, _, err := c.rest.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classify(err)
	}

	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		owner := r.GetOwner().GetLogin()
		if owner == "" {
			owner = username
		}
		out = append(out, Repo{
			Owner: owner,
			Name:  r.GetName(),
			Stars: r.GetStargazersCount(),
		})
	}
	return out, nil
}

// classify maps go-github errors onto the integrations sentinels so callers
// can branch with errors.Is.
func classify(err error) error {
	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		respErr  *gh.ErrorResponse
	)
	switch {
	case errors.As(err, &rateErr):
		wait := time.Until(rateErr.Rate.Reset.Time)
		return rateLimited(wait, rateErr.Message)
	case errors.As(err, &abuseErr):
		return rateLimited(abuseErr.GetRetryAfter(), abuseErr.Message)
	case errors.As(err, &respErr) && respErr.Response != nil:
		if s := integrations.CheckStatus(respErr.Response.StatusCode); s != nil {
			return fmt.Errorf("%w: %v", s, err)
		}
	}
	return fmt.Errorf("%w: %v", integrations.ErrNetwork, err)
}

// rateLimited carries the upstream wait so callers can pass it on.
func rateLimited(wait time.Duration, msg string) error {
	secs := max(0, int(wait.Round(time.Second).Seconds()))
	return fmt.Errorf("%w: %w", integrations.ErrRateLimited,
		&apperrors.RateLimitedError{RetryAfter: secs, Message: msg})
}
