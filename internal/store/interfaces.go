// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tdterm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository is the local message history.
type MessageRepository interface {
	// SaveMessage stores msg received on session. Saving the same chat and
	// message id again overwrites the stored copy.
	SaveMessage(ctx context.Context, session models.SessionID, msg models.Message) error
	// RecentMessages returns up to limit newest messages, oldest first.
	RecentMessages(ctx context.Context, limit int) ([]models.Message, error)
}
