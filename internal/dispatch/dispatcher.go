// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch pumps updates from the messaging library to the loops
// that consume them.
//
// The [Dispatcher] polls the library with a short timeout until the shutdown
// flag is set and routes each update by kind: authorization states go to the
// authorization channel, new messages go to the render inbox, everything
// else is dropped. Sends block while the destination is full; setting the
// flag wakes a blocked send. Updates still buffered when the dispatcher
// stops are not drained.
//
// When the source reports that no more updates will come, the dispatcher
// stops and closes the authorization channel, so a driver waiting for the
// next state fails instead of waiting forever.
package dispatch

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/shutdown"
	"github.com/MKhiriev/go-tdterm/models"
)

// DefaultPollTimeout is the wait of one ReceiveUpdate call.
const DefaultPollTimeout = time.Second

// UpdateSource yields updates of every session. Err turns non-nil once the
// source is exhausted.
type UpdateSource interface {
	ReceiveUpdate(timeout time.Duration) (update models.Update, session models.SessionID, ok bool)
	Err() error
}

// Recorder is offered every new message before it is rendered.
type Recorder interface {
	SaveMessage(ctx context.Context, session models.SessionID, msg models.Message) error
}

// Option configures a [Dispatcher].
type Option func(*Dispatcher)

// WithPollTimeout sets the wait of one poll. Non-positive values are ignored.
func WithPollTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.pollTimeout = timeout
		}
	}
}

// WithRecorder makes the dispatcher record new messages with r.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

// Dispatcher is the update pump. It is the only sender on the authorization
// channel and closes it when Run returns.
type Dispatcher struct {
	source      UpdateSource
	auth        chan<- models.AuthorizationState
	render      chan<- models.RenderCommand
	flag        *shutdown.Flag
	pollTimeout time.Duration
	recorder    Recorder
	logger      *logger.Logger
}

// New returns a dispatcher reading from source.
func New(
	source UpdateSource,
	auth chan<- models.AuthorizationState,
	render chan<- models.RenderCommand,
	flag *shutdown.Flag,
	log *logger.Logger,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		source:      source,
		auth:        auth,
		render:      render,
		flag:        flag,
		pollTimeout: DefaultPollTimeout,
		logger:      log.GetChildLogger("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run polls and routes updates until the shutdown flag is set, ctx is
// cancelled or the source is exhausted. It always returns nil; the error
// return satisfies workers.Worker. The source's own error stays available
// from its Err method.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.auth)

	d.logger.Debug().Str("func", "Dispatcher.Run").Msg("dispatcher started")
	defer d.logger.Debug().Str("func", "Dispatcher.Run").Msg("dispatcher stopped")

	for !d.flag.IsSet() {
		if ctx.Err() != nil {
			return nil
		}

		update, session, ok := d.source.ReceiveUpdate(d.pollTimeout)
		if !ok || update == nil {
			if err := d.source.Err(); err != nil {
				d.logger.Err(err).Str("func", "Dispatcher.Run").Msg("update source exhausted")
				return nil
			}
			continue
		}
		d.route(ctx, update, session)
	}
	return nil
}

func (d *Dispatcher) route(ctx context.Context, update models.Update, session models.SessionID) {
	switch u := update.(type) {
	case models.UpdateAuthorizationState:
		d.logger.Debug().
			Str("func", "Dispatcher.route").
			Str("state", u.State.AuthorizationType()).
			Msg("authorization state")
		if !sendOrStop(ctx, d.flag, d.auth, u.State) {
			d.logger.Debug().Str("func", "Dispatcher.route").Msg("authorization state dropped on shutdown")
		}

	case models.UpdateNewMessage:
		d.logger.Debug().
			Str("func", "Dispatcher.route").
			Int64("chat_id", u.Message.ChatID).
			Int64("message_id", u.Message.ID).
			Msg("new message")
		d.record(ctx, session, u.Message)
		if !sendOrStop(ctx, d.flag, d.render, models.RenderCommand(models.RenderNewMessage{Update: u})) {
			d.logger.Debug().Str("func", "Dispatcher.route").Msg("message dropped on shutdown")
		}

	default:
		d.logger.Trace().
			Str("func", "Dispatcher.route").
			Str("update", update.UpdateType()).
			Msg("update dropped")
	}
}

func (d *Dispatcher) record(ctx context.Context, session models.SessionID, msg models.Message) {
	if d.recorder == nil {
		return
	}
	if err := d.recorder.SaveMessage(ctx, session, msg); err != nil {
		d.logger.Warn().Err(err).
			Str("func", "Dispatcher.record").
			Int64("message_id", msg.ID).
			Msg("message not recorded")
	}
}

// sendOrStop blocks until v is sent, the flag is set or ctx is done. It
// reports whether v was sent.
func sendOrStop[T any](ctx context.Context, flag *shutdown.Flag, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-flag.Done():
		return false
	case <-ctx.Done():
		return false
	}
}
