package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnProfileStart(ctx, "octocat")
	p.OnStage(ctx, "octocat", "fetching-identity")
	p.OnRepoFailure(ctx, "octocat", "hello-world", "commits", nil)
	p.OnProfileComplete(ctx, "octocat", time.Second, nil)
	p.OnGenerateStart(ctx, "alice", "bob")
	p.OnGenerateComplete(ctx, "alice", "bob", 10, time.Second, nil)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/users/octocat")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/octocat", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/users/octocat", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

func TestTransportReportsRequests(t *testing.T) {
	Reset()
	defer Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	rec := &testHTTPHooks{}
	SetHTTPHooks(rec)

	client := &http.Client{Transport: NewTransport(nil)}
	resp, err := client.Get(server.URL + "/users/octocat")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	resp.Body.Close()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1", rec.requests)
	}
	if rec.lastStatus != http.StatusTeapot {
		t.Errorf("lastStatus = %d, want %d", rec.lastStatus, http.StatusTeapot)
	}
	if rec.lastPath != "/users/octocat" {
		t.Errorf("lastPath = %q, want %q", rec.lastPath, "/users/octocat")
	}
}

func TestTransportReportsErrors(t *testing.T) {
	Reset()
	defer Reset()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	rec := &testHTTPHooks{}
	SetHTTPHooks(rec)

	client := &http.Client{Transport: NewTransport(nil)}
	if _, err := client.Get(url); err == nil {
		t.Fatal("expected error from closed server")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.errors != 1 {
		t.Errorf("errors = %d, want 1", rec.errors)
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }

type testHTTPHooks struct {
	NoopHTTPHooks
	mu         sync.Mutex
	requests   int
	errors     int
	lastStatus int
	lastPath   string
}

func (h *testHTTPHooks) OnRequest(_ context.Context, _, _, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
	h.lastPath = path
}

func (h *testHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastStatus = status
}

func (h *testHTTPHooks) OnError(context.Context, string, string, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors++
}
