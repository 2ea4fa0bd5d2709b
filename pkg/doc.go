// Package pkg provides the core libraries for gitroast.
//
// # Overview
//
// gitroast scores public GitHub accounts and pits two of them against each
// other in a round of language-model roasts. The pkg directory is organized
// into these areas:
//
//  1. [stats] - Profile model and pure scoring (streak, power level, rank,
//     language shares, monthly activity)
//  2. [integrations] - Upstream clients (GitHub REST and GraphQL, Azure
//     OpenAI chat completions)
//  3. [roast] - Prompt construction, completion parsing and filler lines
//  4. [pipeline] - Orchestration (fetch → score → generate → parse)
//  5. [errors] and [observability] - Coded errors and instrumentation hooks
//
// # Architecture
//
// The data flow for one comparison:
//
//	GitHub REST + GraphQL
//	         ↓
//	    [integrations/github] (identity, stars, commits, languages, calendar)
//	         ↓
//	    [stats] (streak, power level, rank, top languages, busiest months)
//	         ↓
//	    [roast] prompt → [integrations/openai] completion → [roast] parser
//	         ↓
//	    [pipeline].Comparison (two profiles plus roasts)
//
// # Quick Start
//
//	gh, _ := github.NewClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//	ai, _ := openai.NewClient(openai.Options{
//	    Endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
//	    APIKey:     os.Getenv("AZURE_OPENAI_KEY"),
//	    Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
//	})
//
//	runner := pipeline.NewRunner(gh, ai, logger)
//	cmp, err := runner.Compare(ctx, "alice", "bob")
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err))
//	    return
//	}
//	for _, r := range cmp.Roasts {
//	    fmt.Printf("%s: %s wins. %s\n", r.Aspect, r.Winner, r.Roast)
//	}
//
// # Failure Model
//
// Identity, repository listing, stars pagination and calendar failures abort
// a profile. A single repository's commit or language call failing counts as
// zero and is logged. A malformed roast block is dropped; zero surviving
// blocks is an error. Nothing is retried.
//
// [stats]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/stats
// [integrations]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/integrations/github
// [integrations/openai]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/integrations/openai
// [roast]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/roast
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gitroast/pkg/observability
package pkg
