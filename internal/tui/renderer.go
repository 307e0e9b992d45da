// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/shutdown"
	"github.com/MKhiriev/go-tdterm/models"
)

// Render loop defaults.
const (
	DefaultTick      = 10 * time.Millisecond
	DefaultQueueSize = 5
)

// RendererOptions configures a [Renderer].
type RendererOptions struct {
	// Tick is the interval between two inbox checks.
	Tick time.Duration
	// QueueSize is the inbox capacity.
	QueueSize int
}

// Renderer is the render loop. Start it with [Start], run it with Run.
type Renderer struct {
	term  Terminal
	guard *Guard
	view  *View
	flag  *shutdown.Flag
	tick  time.Duration

	inbox chan models.RenderCommand
	done  chan struct{}

	logger *logger.Logger
}

// Start acquires t and draws the first frame of view. The caller must call
// Run, or Release if Run is never called.
func Start(t Terminal, view *View, flag *shutdown.Flag, opts RendererOptions, log *logger.Logger) (*Renderer, error) {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	guard, err := Acquire(t)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		term:   t,
		guard:  guard,
		view:   view,
		flag:   flag,
		tick:   opts.Tick,
		inbox:  make(chan models.RenderCommand, opts.QueueSize),
		done:   make(chan struct{}),
		logger: log.GetChildLogger("renderer"),
	}
	r.draw()
	return r, nil
}

// Inbox is the channel producers send render commands to. It is never
// closed.
func (r *Renderer) Inbox() chan<- models.RenderCommand {
	return r.inbox
}

// Send delivers cmd to the loop. It fails with [ErrRendererStopped] once
// Run has returned.
func (r *Renderer) Send(ctx context.Context, cmd models.RenderCommand) error {
	select {
	case <-r.done:
		return ErrRendererStopped
	default:
	}

	select {
	case r.inbox <- cmd:
		return nil
	case <-r.done:
		return ErrRendererStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// Release restores the terminal. It is safe to call any number of times,
// before, during or after Run.
func (r *Renderer) Release() error {
	return r.guard.Release()
}

// Run ticks until it receives [models.RenderExit], the shutdown flag is set
// or ctx is cancelled, then restores the terminal. Each tick takes at most
// one command from the inbox without blocking.
func (r *Renderer) Run(ctx context.Context) (err error) {
	defer close(r.done)
	defer func() {
		if releaseErr := r.Release(); releaseErr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", releaseErr)
		}
	}()

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	r.logger.Debug().Str("func", "Renderer.Run").Dur("tick", r.tick).Msg("render loop started")

	for !r.flag.IsSet() {
		select {
		case <-ctx.Done():
			r.logger.Debug().Str("func", "Renderer.Run").Msg("render loop cancelled")
			return nil
		case <-ticker.C:
		}

		select {
		case cmd := <-r.inbox:
			if exit := r.handle(cmd); exit {
				r.logger.Debug().Str("func", "Renderer.Run").Msg("render loop exited")
				return nil
			}
		default:
		}
	}

	r.logger.Debug().Str("func", "Renderer.Run").Msg("render loop stopped by shutdown")
	return nil
}

// handle applies one command and reports whether the loop must exit.
func (r *Renderer) handle(cmd models.RenderCommand) bool {
	switch c := cmd.(type) {
	case models.RenderExit:
		return true
	case models.RenderNewMessage:
		r.view.Append(c.Update.Message)
		r.draw()
	}
	return false
}

func (r *Renderer) draw() {
	if w, h, err := r.term.Size(); err == nil {
		r.view.Resize(w, h)
	}
	if err := r.term.Draw(r.view.Render()); err != nil {
		r.logger.Err(err).Str("func", "Renderer.draw").Msg("failed to draw frame")
	}
}
