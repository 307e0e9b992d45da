// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"sync"
)

// fakeTerminal records every call in order.
type fakeTerminal struct {
	mu     sync.Mutex
	events []string

	enterErr   error
	restoreErr error
	panicOn    string
}

func (f *fakeTerminal) record(event string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeTerminal) Enter() error {
	f.record("enter")
	return f.enterErr
}

func (f *fakeTerminal) Restore() error {
	f.record("restore")
	return f.restoreErr
}

func (f *fakeTerminal) Draw(frame string) error {
	if f.panicOn != "" && strings.Contains(frame, f.panicOn) {
		panic("draw: " + f.panicOn)
	}
	f.record("draw:" + frame)
	return nil
}

func (f *fakeTerminal) DrawPrompt(view string) error {
	f.record("prompt:" + view)
	return nil
}

func (f *fakeTerminal) Size() (int, int, error) {
	return 80, 24, nil
}

func (f *fakeTerminal) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func (f *fakeTerminal) count(event string) int {
	n := 0
	for _, e := range f.snapshot() {
		if e == event {
			n++
		}
	}
	return n
}

// index returns the position of the first event containing substr, or -1.
func (f *fakeTerminal) index(substr string) int {
	for i, e := range f.snapshot() {
		if strings.Contains(e, substr) {
			return i
		}
	}
	return -1
}
