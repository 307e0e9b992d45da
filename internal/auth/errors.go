// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrStatesClosed is returned by Drive when the state channel is closed
	// before the awaited state arrives.
	ErrStatesClosed = errors.New("authorization state channel closed")

	// ErrPrompt wraps a failure to read an answer from the operator.
	ErrPrompt = errors.New("prompt failed")
)
