// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui owns the terminal while the client runs.
//
// [Acquire] switches the terminal to the alternate screen with mouse capture
// and raw input and returns a [Guard] whose Release undoes all of it exactly
// once. The [Renderer] is the render loop: every tick it takes at most one
// command from its inbox without blocking, appends new messages to the
// [View] and redraws, and tears the terminal down on exit, on shutdown and
// on panic.
//
// [InputPrompter] asks the operator questions with a bubbletea text input,
// since a raw terminal does not echo typed characters.
package tui
