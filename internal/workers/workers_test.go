// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := New(w1, w2, w3)
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not block on empty workers list
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_New_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	ws := New(nil, w, nil)

	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.runCount.Load(); got != 1 {
		t.Errorf("expected Run to be called exactly once, got %d", got)
	}
}

func TestWorkers_Wait_NotStarted(t *testing.T) {
	ws := New(&mockWorker{})

	if err := ws.Wait(); err != nil {
		t.Fatalf("expected nil from Wait on unstarted group, got %v", err)
	}
}

func TestWorkers_Start_Twice(t *testing.T) {
	ws := New(&mockWorker{})

	if err := ws.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ws.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
	if err := ws.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	blocking := WorkerFunc(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(5 * time.Second):
			return errors.New("worker was not cancelled")
		}
	})

	ws := New(blocking, &mockWorker{err: boom})
	if err := ws.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestWorkers_StartReturnsBeforeWorkersFinish(t *testing.T) {
	release := make(chan struct{})
	var finished atomic.Bool

	ws := New(WorkerFunc(func(context.Context) error {
		<-release
		finished.Store(true)
		return nil
	}))

	if err := ws.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if finished.Load() {
		t.Fatal("worker finished before release")
	}

	close(release)
	if err := ws.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !finished.Load() {
		t.Error("Wait returned before the worker finished")
	}
}
