// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrAlreadyStarted is returned by Start when the group is already running.
var ErrAlreadyStarted = errors.New("workers already started")

// Workers is a group of workers started and awaited together.
type Workers struct {
	workers []Worker

	mu    sync.Mutex
	group *errgroup.Group
}

// New returns a group of the given workers. Nil workers are skipped.
func New(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Start runs every worker in its own goroutine and returns immediately.
func (w *Workers) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.group != nil {
		return ErrAlreadyStarted
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		group.Go(func() error {
			return worker.Run(groupCtx)
		})
	}
	w.group = group
	return nil
}

// Wait blocks until every started worker has returned and reports the first
// non-nil error. Wait on a group that was never started returns nil.
func (w *Workers) Wait() error {
	w.mu.Lock()
	group := w.group
	w.mu.Unlock()

	if group == nil {
		return nil
	}
	return group.Wait()
}

// Run starts the workers and waits for them.
func (w *Workers) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	return w.Wait()
}
