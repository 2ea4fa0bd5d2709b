package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gitroast/pkg/observability"
)

// OwnedRepoLimit caps how many owned repositories TotalCommits inspects.
// Only the first page is read; repositories past it are not counted.
const OwnedRepoLimit = 100

// TotalCommits sums the user's commits across their owned repositories.
//
// Each repository is counted independently. A repository whose count
// cannot be fetched contributes 0 and is logged; it never fails the total.
// Only the owned-repository listing itself can fail the call.
func (c *Client) TotalCommits(ctx context.Context, username string) (int, error) {
	repos, err := c.listRepos(ctx, username, &gh.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: gh.ListOptions{PerPage: OwnedRepoLimit},
	})
	if err != nil {
		return 0, fmt.Errorf("list owned repositories for %s: %w", username, err)
	}

	counts := make([]int, len(repos))
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, r := range repos {
		g.Go(func() error {
			n, err := c.repoCommits(ctx, username, r)
			if err != nil {
				c.logger.Warn("commit count failed", "user", username, "repo", r.Name, "err", err)
				observability.Pipeline().OnRepoFailure(ctx, username, r.Name, "commits", err)
				return nil
			}
			counts[i] = n
			return nil
		})
	}
	_ = g.Wait()

	var total int
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// repoCommits counts username's commits in one repository. Participation
// stats are preferred; when they are missing or still being computed, the
// last-page number of a one-per-page commit listing stands in for the count.
func (c *Client) repoCommits(ctx context.Context, username string, r Repo) (int, error) {
	p, _, err := c.rest.Repositories.ListParticipation(ctx, r.Owner, r.Name)
	var accepted *gh.AcceptedError
	switch {
	case errors.As(err, &accepted):
		// 202: stats not ready yet
	case err != nil:
		return 0, fmt.Errorf("participation: %w", classify(err))
	case p != nil && p.Owner != nil:
		var sum int
		for _, n := range p.Owner {
			sum += n
		}
		return sum, nil
	}

	commits, resp, err := c.rest.Repositories.ListCommits(ctx, r.Owner, r.Name, &gh.CommitsListOptions{
		Author:      username,
		ListOptions: gh.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("commits: %w", classify(err))
	}
	if resp != nil && resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(commits), nil
}
