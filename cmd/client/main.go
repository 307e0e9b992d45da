// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tdterm/internal/adapter"
	"github.com/MKhiriev/go-tdterm/internal/auth"
	"github.com/MKhiriev/go-tdterm/internal/client"
	"github.com/MKhiriev/go-tdterm/internal/config"
	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/store"
	"github.com/MKhiriev/go-tdterm/internal/tui"
	"github.com/MKhiriev/go-tdterm/models"
)

const role = "tdterm"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.New(role, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewClientLogger(role, cfg.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, build, log)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, tui.ErrUserQuit):
		log.Info().Str("func", "main").Msg("interrupted")
	default:
		fmt.Fprintln(os.Stderr, models.OperatorMessage(err))
		log.Fatal().Err(err).Msg("client run error")
	}

	_ = closeLog()
}

func run(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) error {
	messenger, err := adapter.NewGatewayAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create gateway adapter: %w", err)
	}
	defer func() { _ = messenger.Close() }()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() { _ = storages.Close() }()

	terminal, err := tui.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	app, err := client.NewApp(client.Dependencies{
		Messenger: messenger,
		History:   storages.Messages,
		Terminal:  terminal,
		Prompter:  newPrompter(cfg.TUI.PromptMode, os.Stdin, os.Stdout, terminal),
		Output:    os.Stdout,
	}, cfg, build, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

// newPrompter returns the line prompter writing to out, or the text input
// drawn on screen.
func newPrompter(mode string, in io.Reader, out io.Writer, screen tui.PromptScreen) auth.Prompter {
	if mode == config.PromptModeLine {
		return auth.NewLinePrompter(in, out)
	}
	return tui.NewInputPrompter(in, screen)
}
