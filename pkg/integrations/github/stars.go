package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v62/github"
)

// StarsPerPage is the page size used when walking every repository.
const StarsPerPage = 100

// TotalStars sums stargazer counts across every repository listed for
// username. No type filter is applied, so forks count too.
func (c *Client) TotalStars(ctx context.Context, username string) (int, error) {
	var total int
	fetch := func(ctx context.Context, page, perPage int) ([]Repo, error) {
		return c.listRepos(ctx, username, &gh.RepositoryListByUserOptions{
			ListOptions: gh.ListOptions{Page: page, PerPage: perPage},
		})
	}
	visit := func(repos []Repo) {
		for _, r := range repos {
			total += r.Stars
		}
	}

	if err := Paginate(ctx, StarsPerPage, fetch, visit); err != nil {
		return 0, fmt.Errorf("list repositories for %s: %w", username, err)
	}
	return total, nil
}
