// Package pipeline assembles profiles and runs comparisons.
//
// This package is the one place where GitHub data, derived metrics and roast
// generation meet. The CLI and the API server both go through a [Runner] so
// they behave the same.
//
// # Profile Stages
//
// [Runner.FetchProfile] moves through these stages:
//
//	fetching-identity -> fetching-repos
//	  -> {fetching-languages, fetching-calendar, fetching-stars, fetching-commits}
//	  -> computing-streak -> computing-power-level -> computing-rank -> assembled
//
// The four fetch branches run concurrently and are joined before any
// computation starts. Identity, repository listings and the calendar are
// hard failures: the profile moves to [StageFailed] and the caller gets one
// error carrying the generic "Failed to fetch GitHub data" message. Branches
// are not cancelled when a sibling fails; in-flight calls run to completion.
//
// # Comparisons
//
// [Runner.Compare] fetches both profiles concurrently, then sends their
// summaries to the [Generator] and parses the completion into roasts.
//
// # Usage
//
//	gh, _ := github.NewClient(github.Options{Token: token, Logger: logger})
//	ai, _ := openai.NewClient(openai.Options{...})
//	runner := pipeline.NewRunner(gh, ai, logger)
//
//	cmp, err := runner.Compare(ctx, "alice", "bob")
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err))
//	}
package pipeline

import (
	"context"

	"github.com/matzehuels/gitroast/pkg/integrations/github"
	"github.com/matzehuels/gitroast/pkg/integrations/openai"
	"github.com/matzehuels/gitroast/pkg/roast"
	"github.com/matzehuels/gitroast/pkg/stats"
)

// Stage names one step of profile assembly.
type Stage string

const (
	StageFetchingIdentity    Stage = "fetching-identity"
	StageFetchingRepos       Stage = "fetching-repos"
	StageFetchingLanguages   Stage = "fetching-languages"
	StageFetchingCalendar    Stage = "fetching-calendar"
	StageFetchingStars       Stage = "fetching-stars"
	StageFetchingCommits     Stage = "fetching-commits"
	StageComputingStreak     Stage = "computing-streak"
	StageComputingPowerLevel Stage = "computing-power-level"
	StageComputingRank       Stage = "computing-rank"
	StageAssembled           Stage = "assembled"
	StageFailed              Stage = "failed"
)

// Source provides the raw account data. *github.Client implements it.
type Source interface {
	FetchUser(ctx context.Context, username string) (*github.User, error)
	ListRecentRepos(ctx context.Context, username string) ([]github.Repo, error)
	LanguageBytes(ctx context.Context, username string, repos []github.Repo) map[string]int
	FetchCalendar(ctx context.Context, username string) (*github.Calendar, error)
	TotalStars(ctx context.Context, username string) (int, error)
	TotalCommits(ctx context.Context, username string) (int, error)
}

// Generator produces a free-text completion. *openai.Client implements it.
type Generator interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Comparison is the full result of comparing two accounts.
type Comparison struct {
	ID     string                `json:"id"`
	User1  *stats.UserStatistics `json:"user1"`
	User2  *stats.UserStatistics `json:"user2"`
	Roasts []roast.Roast         `json:"roasts"`
}

var (
	_ Source    = (*github.Client)(nil)
	_ Generator = (*openai.Client)(nil)
)
