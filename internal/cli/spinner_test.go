package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/gitroast/pkg/observability"
)

func quietSpinner(ctx context.Context, message string) *Spinner {
	s := newSpinnerWithContext(ctx, message)
	s.out = &bytes.Buffer{}
	return s
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := quietSpinner(context.Background(), "working")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	s.Stop()

	if s.ctx.Err() == nil {
		t.Error("Stop should cancel the spinner context")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := quietSpinner(ctx, "waiting")
	s.Start()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept drawing after its context expired")
	}
}

func TestSpinnerHooksFollowStages(t *testing.T) {
	s := quietSpinner(context.Background(), "start")
	h := spinnerHooks{spinner: s}

	h.OnStage(context.Background(), "alice", "fetching-stars")
	if got, want := s.Message(), "alice: fetching stars"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	h.OnGenerateStart(context.Background(), "alice", "bob")
	if got, want := s.Message(), "generating roasts"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestWithSpinnerDisabled(t *testing.T) {
	before := observability.Pipeline()
	wantErr := errors.New("boom")

	err := withSpinner(context.Background(), false, "x", func(context.Context) error {
		if observability.Pipeline() != before {
			t.Error("disabled spinner should not install hooks")
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("withSpinner error = %v, want %v", err, wantErr)
	}
}
