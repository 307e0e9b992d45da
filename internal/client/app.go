// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tdterm/internal/adapter"
	"github.com/MKhiriev/go-tdterm/internal/auth"
	"github.com/MKhiriev/go-tdterm/internal/config"
	"github.com/MKhiriev/go-tdterm/internal/dispatch"
	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/shutdown"
	"github.com/MKhiriev/go-tdterm/internal/store"
	"github.com/MKhiriev/go-tdterm/internal/tui"
	"github.com/MKhiriev/go-tdterm/internal/workers"
	"github.com/MKhiriev/go-tdterm/models"
)

const viewTitle = "tdterm"

// Dependencies are the collaborators of an [App].
type Dependencies struct {
	Messenger adapter.Messenger
	// History is optional.
	History  store.MessageRepository
	Terminal tui.Terminal
	Prompter auth.Prompter
	// Output receives the greeting and library error messages.
	Output io.Writer
}

var _ Client = (*App)(nil)

// App is the client runtime.
type App struct {
	deps   Dependencies
	cfg    config.ClientConfig
	build  models.AppBuildInfo
	logger *logger.Logger
}

// NewApp validates deps and returns the client runtime.
func NewApp(deps Dependencies, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	switch {
	case cfg == nil:
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	case deps.Messenger == nil:
		return nil, fmt.Errorf("%w: messenger", ErrMissingDependency)
	case deps.Terminal == nil:
		return nil, fmt.Errorf("%w: terminal", ErrMissingDependency)
	case deps.Prompter == nil:
		return nil, fmt.Errorf("%w: prompter", ErrMissingDependency)
	case deps.Output == nil:
		return nil, fmt.Errorf("%w: output", ErrMissingDependency)
	}

	return &App{
		deps:   deps,
		cfg:    *cfg,
		build:  build,
		logger: log.GetChildLogger("app"),
	}, nil
}

// Run executes one session from creation to close. It returns once both
// loops have stopped and the terminal is restored.
func (a *App) Run(ctx context.Context) error {
	session, err := a.deps.Messenger.CreateSession(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	log := a.logger.With().Stringer("session", session).Logger()

	authStates := make(chan models.AuthorizationState, a.cfg.Workers.QueueSize)
	flag := shutdown.New()

	renderer, err := tui.Start(a.deps.Terminal, a.newView(ctx), flag, tui.RendererOptions{
		Tick:      a.cfg.Workers.RenderTick,
		QueueSize: a.cfg.Workers.QueueSize,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("start render loop: %w", err)
	}
	defer func() { _ = renderer.Release() }()

	opts := []dispatch.Option{dispatch.WithPollTimeout(a.cfg.Adapter.PollTimeout)}
	if a.deps.History != nil {
		opts = append(opts, dispatch.WithRecorder(a.deps.History))
	}
	dispatcher := dispatch.New(a.deps.Messenger, authStates, renderer.Inbox(), flag, a.logger, opts...)

	loops := workers.New(renderer, dispatcher)
	if err = loops.Start(ctx); err != nil {
		return fmt.Errorf("start loops: %w", err)
	}

	log.Info().Str("func", "App.Run").Msg("session started")

	if err = a.runSession(ctx, session, authStates, flag, renderer); err != nil {
		// the dispatcher closes the states channel when the updates stop
		if errors.Is(err, auth.ErrStatesClosed) {
			if cause := a.deps.Messenger.Err(); cause != nil {
				err = fmt.Errorf("%w: %w", err, cause)
			}
		}
		flag.Set()
		if waitErr := loops.Wait(); waitErr != nil {
			log.Err(waitErr).Str("func", "App.Run").Msg("loop failed")
		}
		return err
	}

	if err = loops.Wait(); err != nil {
		return fmt.Errorf("loops: %w", err)
	}

	log.Info().Str("func", "App.Run").Msg("session finished")
	return nil
}

// runSession drives the session to ready, greets the account, closes the
// session and drives it to closed.
func (a *App) runSession(
	ctx context.Context,
	session models.SessionID,
	authStates <-chan models.AuthorizationState,
	flag *shutdown.Flag,
	renderer *tui.Renderer,
) error {
	// any request starts the update stream
	if err := a.deps.Messenger.SetLogVerbosity(ctx, a.cfg.Session.LogVerbosity, session); err != nil {
		return fmt.Errorf("set log verbosity: %w", err)
	}

	driver := auth.NewDriver(a.deps.Messenger, a.deps.Prompter, a.deps.Output, a.sessionParameters(), flag, a.logger)

	states, err := driver.Drive(ctx, session, authStates)
	if err != nil {
		return fmt.Errorf("authorize: %w", err)
	}

	// closed before it got ready: nothing to greet or close
	if !flag.IsSet() {
		me, err := a.deps.Messenger.GetMe(ctx, session)
		if err != nil {
			return fmt.Errorf("get me: %w", err)
		}
		if _, err = fmt.Fprintf(a.deps.Output, "Hi, I'm %s\r\n", me.FirstName); err != nil {
			a.logger.Err(err).Str("func", "App.runSession").Msg("failed to print greeting")
		}

		if err = a.deps.Messenger.CloseSession(ctx, session); err != nil {
			return fmt.Errorf("close session: %w", err)
		}

		if _, err = driver.Drive(ctx, session, states); err != nil {
			return fmt.Errorf("wait for close: %w", err)
		}
	}

	if err = renderer.Send(ctx, models.RenderExit{}); err != nil && !errors.Is(err, tui.ErrRendererStopped) {
		return fmt.Errorf("stop render loop: %w", err)
	}
	return nil
}

// newView returns the message view pre-filled with the recent history.
func (a *App) newView(ctx context.Context) *tui.View {
	view := tui.NewView(tui.ViewOptions{
		Title:    viewTitle,
		Capacity: a.cfg.TUI.HistorySize,
		Markdown: a.cfg.TUI.Markdown,
	})
	if a.deps.History == nil {
		return view
	}

	recent, err := a.deps.History.RecentMessages(ctx, a.cfg.TUI.HistorySize)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.newView").Msg("history not loaded")
		return view
	}
	view.Append(recent...)
	return view
}

func (a *App) sessionParameters() models.SessionParameters {
	return models.SessionParameters{
		UseTestDC:          a.cfg.Session.UseTestDC,
		DatabaseDirectory:  a.cfg.Session.DatabaseDirectory,
		FilesDirectory:     a.cfg.Session.FilesDirectory,
		UseSecretChats:     false,
		APIID:              a.cfg.App.APIID,
		APIHash:            a.cfg.App.APIHash,
		SystemLanguageCode: a.cfg.Session.LanguageCode,
		DeviceModel:        a.cfg.Session.DeviceModel,
		ApplicationVersion: a.build.BuildVersion(),
		IgnoreFileNames:    true,
	}
}
