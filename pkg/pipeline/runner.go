package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/integrations"
	"github.com/matzehuels/gitroast/pkg/integrations/github"
	"github.com/matzehuels/gitroast/pkg/observability"
	"github.com/matzehuels/gitroast/pkg/roast"
	"github.com/matzehuels/gitroast/pkg/stats"
)

// Runner builds profiles and comparisons.
//
// A Runner holds no per-request state. One instance is shared by every
// request of a process.
type Runner struct {
	Source    Source
	Generator Generator // may be nil when only profiles are needed
	Logger    *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(src Source, gen Generator, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Source:    src,
		Generator: gen,
		Logger:    logger,
	}
}

// FetchProfile assembles the statistics record for username.
//
// On failure the returned error is an *errors.Error whose message is the
// generic fetch-failure text; the upstream cause is only logged.
func (r *Runner) FetchProfile(ctx context.Context, username string) (*stats.UserStatistics, error) {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnProfileStart(ctx, username)

	s, err := r.fetchProfile(ctx, username)
	hooks.OnProfileComplete(ctx, username, time.Since(start), err)
	if err != nil {
		r.stage(ctx, username, StageFailed)
		r.Logger.Error("profile fetch failed", "user", username, "err", err)
		return nil, errors.Wrap(failureCode(err), err, errors.MsgFetchFailed)
	}

	r.Logger.Info("profile assembled",
		"user", username,
		"power", s.PowerLevel,
		"rank", s.UniversalRank.Label(),
		"duration", time.Since(start).Round(time.Millisecond))
	return s, nil
}

func (r *Runner) fetchProfile(ctx context.Context, username string) (*stats.UserStatistics, error) {
	r.stage(ctx, username, StageFetchingIdentity)
	user, err := r.Source.FetchUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}

	r.stage(ctx, username, StageFetchingRepos)
	repos, err := r.Source.ListRecentRepos(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("repositories: %w", err)
	}

	var (
		langBytes      map[string]int
		cal            *github.Calendar
		months         []stats.MonthlyActivity
		stars, commits int
	)

	// Plain Group: a failed branch does not cancel its siblings.
	var g errgroup.Group
	g.Go(func() error {
		r.stage(ctx, username, StageFetchingLanguages)
		langBytes = r.Source.LanguageBytes(ctx, username, repos)
		return nil
	})
	g.Go(func() error {
		r.stage(ctx, username, StageFetchingCalendar)
		c, err := r.Source.FetchCalendar(ctx, username)
		if err != nil {
			if stderrors.Is(err, github.ErrEmptyCalendar) {
				return errors.Wrap(errors.ErrCodeCalendarInvalid, err, "contribution calendar")
			}
			return fmt.Errorf("calendar: %w", err)
		}
		m, err := stats.MonthlyTotals(c.Days)
		if err != nil {
			return errors.Wrap(errors.ErrCodeCalendarInvalid, err, "contribution calendar")
		}
		cal, months = c, m
		return nil
	})
	g.Go(func() error {
		r.stage(ctx, username, StageFetchingStars)
		n, err := r.Source.TotalStars(ctx, username)
		if err != nil {
			return fmt.Errorf("stars: %w", err)
		}
		stars = n
		return nil
	})
	g.Go(func() error {
		r.stage(ctx, username, StageFetchingCommits)
		n, err := r.Source.TotalCommits(ctx, username)
		if err != nil {
			return fmt.Errorf("commits: %w", err)
		}
		commits = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &stats.UserStatistics{
		Name:                 user.Name,
		Login:                user.Login,
		AvatarURL:            user.AvatarURL,
		Bio:                  user.Bio,
		Followers:            user.Followers,
		Following:            user.Following,
		PublicRepos:          user.PublicRepos,
		TopLanguages:         stats.RankLanguages(langBytes, stats.TopLanguagesLimit),
		Contributions:        cal.Total,
		ContributionCalendar: cal.Days,
		MostActiveMonths:     stats.TopMonths(months, stats.MostActiveMonthsLimit),
		TotalStars:           stars,
		TotalCommits:         commits,
	}
	if s.ContributionCalendar == nil {
		s.ContributionCalendar = []stats.ContributionDay{}
	}

	r.stage(ctx, username, StageComputingStreak)
	s.LongestStreak = stats.LongestStreak(s.ContributionCalendar)

	r.stage(ctx, username, StageComputingPowerLevel)
	s.PowerLevel = stats.PowerLevel(s.Metrics())

	r.stage(ctx, username, StageComputingRank)
	s.UniversalRank = stats.UniversalRank(s.PowerLevel)

	r.stage(ctx, username, StageAssembled)
	return s, nil
}

// Compare validates both usernames, fetches both profiles concurrently and
// generates roasts for the pair. Every error it returns is an
// *errors.Error with a user-facing message.
func (r *Runner) Compare(ctx context.Context, user1, user2 string) (*Comparison, error) {
	if err := errors.ValidateUsernamePair(user1, user2); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidUsername, err, errors.MsgInvalidUsernames)
	}
	if r.Generator == nil {
		return nil, errors.New(errors.ErrCodeConfig, "roast generation is not configured")
	}

	var p1, p2 *stats.UserStatistics
	var g errgroup.Group
	g.Go(func() (err error) {
		p1, err = r.FetchProfile(ctx, user1)
		return err
	})
	g.Go(func() (err error) {
		p2, err = r.FetchProfile(ctx, user2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roasts, err := r.GenerateRoasts(ctx, p1.Summary(), p2.Summary())
	if err != nil {
		return nil, err
	}

	return &Comparison{
		ID:     uuid.NewString(),
		User1:  p1,
		User2:  p2,
		Roasts: roasts,
	}, nil
}

// GenerateRoasts asks the generator to compare two summaries and parses the
// completion. Display names decide the loser of each roast.
func (r *Runner) GenerateRoasts(ctx context.Context, u1, u2 stats.Summary) ([]roast.Roast, error) {
	if r.Generator == nil {
		return nil, errors.New(errors.ErrCodeConfig, "roast generation is not configured")
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, u1.Login, u2.Login)

	roasts, err := r.generate(ctx, u1, u2)
	hooks.OnGenerateComplete(ctx, u1.Login, u2.Login, len(roasts), time.Since(start), err)
	if err != nil {
		r.Logger.Error("roast generation failed", "user1", u1.Login, "user2", u2.Login, "err", err)
		code := errors.ErrCodeGenerationFailed
		if errors.Is(err, errors.ErrCodeNoValidRoasts) {
			code = errors.ErrCodeNoValidRoasts
		}
		return nil, errors.Wrap(code, err, errors.MsgCompareFailed)
	}

	r.Logger.Info("roasts generated", "count", len(roasts), "duration", time.Since(start).Round(time.Millisecond))
	return roasts, nil
}

func (r *Runner) generate(ctx context.Context, u1, u2 stats.Summary) ([]roast.Roast, error) {
	text, err := r.Generator.Complete(ctx, roast.SystemPrompt, roast.BuildPrompt(u1, u2))
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}
	return roast.Parser{Logger: r.Logger}.Parse(text, u1.Name, u2.Name)
}

func (r *Runner) stage(ctx context.Context, username string, s Stage) {
	r.Logger.Debug("stage", "user", username, "stage", s)
	observability.Pipeline().OnStage(ctx, username, string(s))
}

// failureCode picks the most specific code for a profile failure.
func failureCode(err error) errors.Code {
	switch {
	case errors.Is(err, errors.ErrCodeCalendarInvalid):
		return errors.ErrCodeCalendarInvalid
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.ErrCodeUserNotFound
	case stderrors.Is(err, integrations.ErrRateLimited):
		return errors.ErrCodeRateLimited
	default:
		return errors.ErrCodeFetchFailed
	}
}
