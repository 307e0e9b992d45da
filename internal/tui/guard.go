// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sync"
)

// Guard holds an entered terminal. Release restores it; only the first call
// does anything.
type Guard struct {
	term Terminal

	once sync.Once
	err  error
}

// Acquire enters t and returns the guard restoring it. If entering fails
// halfway, whatever was changed is restored before the error is returned.
func Acquire(t Terminal) (*Guard, error) {
	if err := t.Enter(); err != nil {
		_ = t.Restore()
		return nil, fmt.Errorf("acquire terminal: %w", err)
	}
	return &Guard{term: t}, nil
}

// Release restores the terminal. Later calls return the first call's
// result.
func (g *Guard) Release() error {
	g.once.Do(func() {
		g.err = g.term.Restore()
	})
	return g.err
}
