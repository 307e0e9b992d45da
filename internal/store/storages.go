// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tdterm/internal/config"
	"github.com/MKhiriev/go-tdterm/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Messages is the message history; nil when history is disabled.
	Messages MessageRepository

	db *DB
}

// NewClientStorages opens the history database at cfg.DB.DSN and runs its
// migrations. An empty DSN yields storages with history disabled.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewClientStorages").Msg("message history disabled")
		return &ClientStorages{}, nil
	}

	log.Info().Str("func", "NewClientStorages").Str("dsn", cfg.DB.DSN).Msg("opening message history...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Messages: NewMessageRepository(db, log),
		db:       db,
	}, nil
}

// Close closes the history database, if one is open.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
