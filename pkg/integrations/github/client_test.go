package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/matzehuels/gitroast/pkg/errors"
	"github.com/matzehuels/gitroast/pkg/integrations"
)

func testClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{
		Token:      "test-token",
		BaseURL:    server.URL,
		GraphQLURL: server.URL + "/graphql",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type repoJSON struct {
	Name  string `json:"name"`
	Stars int    `json:"stargazers_count"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
}

func repos(owner string, n int, stars int) []repoJSON {
	out := make([]repoJSON, n)
	for i := range out {
		out[i].Name = fmt.Sprintf("repo-%d", i)
		out[i].Stars = stars
		out[i].Owner.Login = owner
	}
	return out
}

func TestFetchUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		writeJSON(w, map[string]any{
			"login":        "alice",
			"avatar_url":   "https://avatars.example/alice",
			"followers":    12,
			"following":    3,
			"public_repos": 7,
		})
	})
	c := testClient(t, mux)

	u, err := c.FetchUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if u.Name != "alice" {
		t.Errorf("Name = %q, want login fallback %q", u.Name, "alice")
	}
	if u.Bio != "" {
		t.Errorf("Bio = %q, want empty", u.Bio)
	}
	if u.Followers != 12 || u.Following != 3 || u.PublicRepos != 7 {
		t.Errorf("counters = %+v", u)
	}
}

func TestFetchUserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]string{"message": "Not Found"})
	})
	c := testClient(t, mux)

	_, err := c.FetchUser(context.Background(), "ghost")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Fatalf("FetchUser error = %v, want ErrNotFound", err)
	}
}

func TestFetchUserRateLimited(t *testing.T) {
	reset := time.Now().Add(2 * time.Minute).Unix()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
		w.WriteHeader(http.StatusForbidden)
		writeJSON(w, map[string]string{"message": "API rate limit exceeded"})
	})
	c := testClient(t, mux)

	_, err := c.FetchUser(context.Background(), "alice")
	if !errors.Is(err, integrations.ErrRateLimited) {
		t.Fatalf("FetchUser error = %v, want ErrRateLimited", err)
	}
	var rl *apperrors.RateLimitedError
	if !errors.As(err, &rl) {
		t.Fatalf("FetchUser error = %v, want a RateLimitedError in the chain", err)
	}
	if rl.RetryAfter < 100 || rl.RetryAfter > 121 {
		t.Errorf("RetryAfter = %d, want about 120", rl.RetryAfter)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		pages     []int // items per page, in order
		wantCalls int
		wantItems int
	}{
		{"short first page", []int{2}, 1, 2},
		{"empty first page", []int{0}, 1, 0},
		{"full then short", []int{3, 3, 1}, 3, 7},
		{"full then empty", []int{3, 3, 0}, 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls, items int
			fetch := func(_ context.Context, page, perPage int) ([]int, error) {
				calls++
				if page != calls {
					t.Fatalf("page = %d on call %d", page, calls)
				}
				return make([]int, tt.pages[page-1]), nil
			}
			err := Paginate(context.Background(), 3, fetch, func(p []int) { items += len(p) })
			if err != nil {
				t.Fatalf("Paginate: %v", err)
			}
			if calls != tt.wantCalls || items != tt.wantItems {
				t.Errorf("calls=%d items=%d, want %d/%d", calls, items, tt.wantCalls, tt.wantItems)
			}
		})
	}
}

func TestPaginateAbortsOnError(t *testing.T) {
	boom := errors.New("boom")
	var visited int
	fetch := func(_ context.Context, page, perPage int) ([]int, error) {
		if page == 2 {
			return nil, boom
		}
		return make([]int, perPage), nil
	}
	err := Paginate(context.Background(), 2, fetch, func(p []int) { visited += len(p) })
	if !errors.Is(err, boom) {
		t.Fatalf("Paginate error = %v, want boom", err)
	}
	if visited != 2 {
		t.Errorf("visited %d items before failure, want 2", visited)
	}
}

func TestTotalStars(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("type") != "" {
			t.Errorf("unexpected type filter %q", r.URL.Query().Get("type"))
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1, 2:
			writeJSON(w, repos("alice", StarsPerPage, 1))
		case 3:
			writeJSON(w, repos("alice", 5, 2))
		default:
			t.Errorf("unexpected page %d", page)
			writeJSON(w, []repoJSON{})
		}
	})
	c := testClient(t, mux)

	total, err := c.TotalStars(context.Background(), "alice")
	if err != nil {
		t.Fatalf("TotalStars: %v", err)
	}
	if total != 2*StarsPerPage+10 {
		t.Errorf("TotalStars = %d, want %d", total, 2*StarsPerPage+10)
	}
	if calls.Load() != 3 {
		t.Errorf("listing calls = %d, want 3", calls.Load())
	}
}

func TestTotalStarsListingFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := testClient(t, mux)

	if _, err := c.TotalStars(context.Background(), "alice"); err == nil {
		t.Fatal("expected listing failure to propagate")
	}
}

func TestTotalCommitsIsolatesRepoFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "owner" {
			t.Errorf("type = %q, want owner", got)
		}
		if got := r.URL.Query().Get("per_page"); got != strconv.Itoa(OwnedRepoLimit) {
			t.Errorf("per_page = %q", got)
		}
		writeJSON(w, []map[string]any{
			{"name": "stats", "owner": map[string]string{"login": "alice"}},
			{"name": "broken", "owner": map[string]string{"login": "alice"}},
			{"name": "pending", "owner": map[string]string{"login": "alice"}},
			{"name": "nostats", "owner": map[string]string{"login": "alice"}},
		})
	})

	// Summed owner series.
	mux.HandleFunc("/repos/alice/stats/stats/participation", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string][]int{"all": {9, 9, 9}, "owner": {1, 2, 3}})
	})
	// Upstream failure: contributes 0.
	mux.HandleFunc("/repos/alice/broken/stats/participation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	// Stats still computing: fall back to the last page of the commit listing.
	mux.HandleFunc("/repos/alice/pending/stats/participation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{})
	})
	mux.HandleFunc("/repos/alice/pending/commits", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("author"); got != "alice" {
			t.Errorf("author = %q, want alice", got)
		}
		w.Header().Set("Link", `<https://api.example/repos/alice/pending/commits?per_page=1&page=2>; rel="next", <https://api.example/repos/alice/pending/commits?per_page=1&page=42>; rel="last"`)
		writeJSON(w, []map[string]string{{"sha": "abc"}})
	})
	// No owner series and no Link header: count the returned items.
	mux.HandleFunc("/repos/alice/nostats/stats/participation", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{})
	})
	mux.HandleFunc("/repos/alice/nostats/commits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]string{{"sha": "def"}})
	})

	c := testClient(t, mux)

	total, err := c.TotalCommits(context.Background(), "alice")
	if err != nil {
		t.Fatalf("TotalCommits: %v", err)
	}
	if want := 6 + 0 + 42 + 1; total != want {
		t.Errorf("TotalCommits = %d, want %d", total, want)
	}
}

func TestLanguageBytes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/one/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"A": 300})
	})
	mux.HandleFunc("/repos/alice/two/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"B": 100, "A": 100})
	})
	mux.HandleFunc("/repos/alice/three/languages", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	c := testClient(t, mux)

	got := c.LanguageBytes(context.Background(), "alice", []Repo{
		{Owner: "alice", Name: "one"},
		{Owner: "alice", Name: "two"},
		{Owner: "alice", Name: "three"},
	})
	if got["A"] != 400 || got["B"] != 100 || len(got) != 2 {
		t.Errorf("LanguageBytes = %v, want map[A:400 B:100]", got)
	}
}

func TestLanguageBytesNoRepos(t *testing.T) {
	c := testClient(t, http.NewServeMux())
	if got := c.LanguageBytes(context.Background(), "alice", nil); len(got) != 0 {
		t.Errorf("LanguageBytes(nil) = %v, want empty", got)
	}
}

func TestListRecentRepos(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sort"); got != "updated" {
			t.Errorf("sort = %q, want updated", got)
		}
		writeJSON(w, []map[string]any{
			{"name": "fresh", "owner": map[string]string{"login": "acme"}},
			{"name": "noowner"},
		})
	})
	c := testClient(t, mux)

	got, err := c.ListRecentRepos(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListRecentRepos: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d repos, want 2", len(got))
	}
	if got[0].Owner != "acme" || got[1].Owner != "alice" {
		t.Errorf("owners = %q, %q; want acme, alice", got[0].Owner, got[1].Owner)
	}
}

func TestFetchCalendar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]any `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Variables["login"] != "alice" {
			t.Errorf("login variable = %v", body.Variables["login"])
		}
		writeJSON(w, map[string]any{
			"data": map[string]any{
				"user": map[string]any{
					"contributionsCollection": map[string]any{
						"contributionCalendar": map[string]any{
							"totalContributions": 99,
							"weeks": []any{
								map[string]any{"contributionDays": []any{
									map[string]any{"contributionCount": 2, "date": "2024-01-01"},
									map[string]any{"contributionCount": 0, "date": "2024-01-02"},
								}},
								map[string]any{"contributionDays": []any{
									map[string]any{"contributionCount": 3, "date": "2024-01-03"},
								}},
							},
						},
					},
				},
			},
		})
	})
	c := testClient(t, mux)

	cal, err := c.FetchCalendar(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchCalendar: %v", err)
	}
	if cal.Total != 99 {
		t.Errorf("Total = %d, want upstream value 99", cal.Total)
	}
	if len(cal.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(cal.Days))
	}
	if cal.Days[2].Date != "2024-01-03" || cal.Days[2].Count != 3 {
		t.Errorf("last day = %+v", cal.Days[2])
	}
}

func TestFetchCalendarErrors(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "error payload",
			body: map[string]any{
				"data":   nil,
				"errors": []any{map[string]any{"message": "Could not resolve to a User with the login of 'ghost'."}},
			},
		},
		{
			name: "no weeks",
			body: map[string]any{
				"data": map[string]any{"user": map[string]any{
					"contributionsCollection": map[string]any{
						"contributionCalendar": map[string]any{"totalContributions": 0, "weeks": []any{}},
					},
				}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.body)
			})
			c := testClient(t, mux)

			if _, err := c.FetchCalendar(context.Background(), "ghost"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewClientBadBaseURL(t *testing.T) {
	if _, err := NewClient(Options{BaseURL: "://bad"}); err == nil {
		t.Fatal("expected parse error")
	}
}
