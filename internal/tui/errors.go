// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrNotTerminal is returned when the client is not attached to a
	// terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrRendererStopped is returned by Send after the render loop finished.
	ErrRendererStopped = errors.New("render loop stopped")

	// ErrUserQuit is returned by InputPrompter when the operator quits the
	// prompt.
	ErrUserQuit = errors.New("user quit")
)
