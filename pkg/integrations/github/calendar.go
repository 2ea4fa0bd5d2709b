package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/shurcooL/githubv4"

	"github.com/matzehuels/gitroast/pkg/stats"
)

type calendarQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions githubv4.Int
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount githubv4.Int
						Date              githubv4.String
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// ErrEmptyCalendar is returned when the calendar query succeeds but carries
// no weeks, which the upstream never does for a real account.
var ErrEmptyCalendar = errors.New("contribution calendar has no weeks")

// FetchCalendar runs the contribution-calendar query for username and
// flattens weeks into one chronological day series.
//
// Any error, including a GraphQL error payload, is returned as is. The
// caller treats it as fatal for the profile.
func (c *Client) FetchCalendar(ctx context.Context, username string) (*Calendar, error) {
	var q calendarQuery
	vars := map[string]interface{}{
		"login": githubv4.String(username),
	}
	if err := c.graph.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("contribution calendar for %s: %w", username, err)
	}

	cal := q.User.ContributionsCollection.ContributionCalendar
	if len(cal.Weeks) == 0 {
		return nil, fmt.Errorf("contribution calendar for %s: %w", username, ErrEmptyCalendar)
	}

	var days []stats.ContributionDay
	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			days = append(days, stats.ContributionDay{
				Date:  string(d.Date),
				Count: int(d.ContributionCount),
			})
		}
	}

	return &Calendar{
		Total: int(cal.TotalContributions),
		Days:  days,
	}, nil
}
