// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a received chat message reduced to what the terminal shows.
type Message struct {
	ID       int64
	ChatID   int64
	SenderID int64
	Date     time.Time
	// Text is the plain message text. Non-text content is represented by its
	// content type in square brackets, e.g. "[messagePhoto]".
	Text string
}
