package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeStage records whether it ran and optionally fails.
type fakeStage struct {
	name string
	err  error
	ran  bool
}

func (s *fakeStage) Name() string {
	return s.name
}

func (s *fakeStage) Run(_ context.Context) error {
	s.ran = true
	return s.err
}

// TestRunnerRun tests sequential stage execution.
func TestRunnerRun(t *testing.T) {
	t.Parallel()

	t.Run("runs all stages in order", func(t *testing.T) {
		t.Parallel()

		first := &fakeStage{name: "first"}
		second := &fakeStage{name: "second"}

		r := NewRunner([]Stage{first, second})
		if err := r.Run(context.Background()); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if !first.ran || !second.ran {
			t.Error("expected both stages to run")
		}
	})

	t.Run("stage error stops the pipeline", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		first := &fakeStage{name: "first", err: boom}
		second := &fakeStage{name: "second"}

		r := NewRunner([]Stage{first, second})
		err := r.Run(context.Background())
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped stage error, got %v", err)
		}
		if second.ran {
			t.Error("expected second stage to not run")
		}
	})

	t.Run("cancelled context stops between stages", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stage := &fakeStage{name: "only"}
		r := NewRunner([]Stage{stage})
		if err := r.Run(ctx); err == nil {
			t.Fatal("expected context error")
		}
		if stage.ran {
			t.Error("expected stage to not run")
		}
	})
}

// TestStageNames tests stage name listing.
func TestStageNames(t *testing.T) {
	t.Parallel()

	r := NewRunner([]Stage{
		&fakeStage{name: "processor"},
		&fakeStage{name: "analyzer"},
	})

	got := r.StageNames()
	want := []string{"processor", "analyzer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
