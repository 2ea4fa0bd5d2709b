package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gitroast/pkg/observability"
	"github.com/matzehuels/gitroast/pkg/stats"
)

// RecentRepoLimit caps how many recently updated repositories are sampled
// for languages. Only the first page is read.
const RecentRepoLimit = 100

// ListRecentRepos returns up to RecentRepoLimit repositories of username,
// most recently updated first.
func (c *Client) ListRecentRepos(ctx context.Context, username string) ([]Repo, error) {
	repos, err := c.listRepos(ctx, username, &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: RecentRepoLimit},
	})
	if err != nil {
		return nil, fmt.Errorf("list recent repositories for %s: %w", username, err)
	}
	return repos, nil
}

// LanguageBytes fetches the language byte counts of every repo and sums
// them. A repository whose languages cannot be fetched is logged and
// treated as having none.
func (c *Client) LanguageBytes(ctx context.Context, username string, repos []Repo) map[string]int {
	perRepo := make([]map[string]int, len(repos))
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, r := range repos {
		g.Go(func() error {
			langs, _, err := c.rest.Repositories.ListLanguages(ctx, r.Owner, r.Name)
			if err != nil {
				err = classify(err)
				c.logger.Warn("language fetch failed", "user", username, "repo", r.Name, "err", err)
				observability.Pipeline().OnRepoFailure(ctx, username, r.Name, "languages", err)
				return nil
			}
			perRepo[i] = langs
			return nil
		})
	}
	_ = g.Wait()

	return stats.MergeLanguageBytes(perRepo)
}
