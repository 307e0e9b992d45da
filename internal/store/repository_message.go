// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/models"
)

const messagesTable = "messages"

type messageRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewMessageRepository returns the SQLite-backed [MessageRepository].
func NewMessageRepository(db *DB, log *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log.GetChildLogger("messageRepository"),
	}
}

func (r *messageRepository) SaveMessage(ctx context.Context, session models.SessionID, msg models.Message) error {
	query, args, err := r.builder.
		Insert(messagesTable).
		Columns("session_id", "chat_id", "message_id", "sender_id", "sent_at", "text").
		Values(int32(session), msg.ChatID, msg.ID, msg.SenderID, msg.Date.Unix(), msg.Text).
		Suffix("ON CONFLICT (chat_id, message_id) DO UPDATE SET " +
			"sender_id = excluded.sender_id, sent_at = excluded.sent_at, text = excluded.text").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Int64("chat_id", msg.ChatID).
			Int64("message_id", msg.ID).
			Msg("failed to upsert message")
		return fmt.Errorf("%w: save message %d in chat %d: %w", ErrExecutingStatement, msg.ID, msg.ChatID, err)
	}

	return nil
}

func (r *messageRepository) RecentMessages(ctx context.Context, limit int) ([]models.Message, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := r.builder.
		Select("message_id", "chat_id", "sender_id", "sent_at", "text").
		From(messagesTable).
		OrderBy("sent_at DESC", "message_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "messageRepository.RecentMessages").Msg("failed to query messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, limit)
	for rows.Next() {
		var (
			msg    models.Message
			sentAt int64
		)
		if err = rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &sentAt, &msg.Text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		msg.Date = time.Unix(sentAt, 0).UTC()
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	// newest first from the query, oldest first for the caller
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
