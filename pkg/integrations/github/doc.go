// Package github fetches the raw account data a profile is built from.
//
// # Overview
//
// A [Client] wraps two upstream clients sharing one authenticated
// *http.Client:
//
//   - the REST API (go-github) for the user record, repository listings,
//     participation stats, commit listings and language byte counts
//   - the GraphQL API (githubv4) for the one-year contribution calendar
//
// # Usage
//
//	client, err := github.NewClient(github.Options{Token: token})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stars, err := client.TotalStars(ctx, "octocat")
//	commits, err := client.TotalCommits(ctx, "octocat")
//
// # Aggregators
//
//   - [Client.TotalStars] pages through every listed repository.
//   - [Client.TotalCommits] looks at the first [OwnedRepoLimit] owned
//     repositories and counts the user's commits in each.
//   - [Client.LanguageBytes] sums language byte counts across a listing.
//
// Each aggregator lists repositories on its own, so the three totals may
// reflect slightly different snapshots. Per-repository failures inside
// TotalCommits and LanguageBytes are logged and counted as zero; a listing
// failure aborts the aggregate.
//
// # Authentication
//
// A personal access token is optional for REST calls but the GraphQL
// calendar query requires one.
package github
