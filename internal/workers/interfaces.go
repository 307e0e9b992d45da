// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's long-lived loops (the update dispatcher
// and the render loop) as one group.
//
// Each loop implements [Worker]. A [Workers] group starts all of them
// concurrently and waits for every one to return; the first error cancels
// the context handed to the others.
package workers

import "context"

// Worker is a long-lived loop. Run blocks until the loop finishes or ctx is
// cancelled.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
