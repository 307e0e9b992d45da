// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shutdown provides the process-wide cooperative stop signal shared
// by the update dispatcher and the render loop.
package shutdown

import (
	"sync"
	"sync/atomic"
)

// Flag is a single-shot boolean. It starts unset, can be set exactly once
// and is never reset. Readers either poll [Flag.IsSet] once per iteration or
// select on [Flag.Done] while blocked on something else.
//
// The zero value is not usable; create flags with [New].
type Flag struct {
	set  atomic.Bool
	once sync.Once
	done chan struct{}
}

// New returns an unset flag.
func New() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Set marks the flag. Calls after the first one do nothing.
func (f *Flag) Set() {
	f.once.Do(func() {
		f.set.Store(true)
		close(f.done)
	})
}

// IsSet reports whether Set has been called.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Done returns a channel that is closed once the flag is set.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}
