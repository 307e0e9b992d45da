// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig]. Required fields are
// checked on the client view, so this only rejects values that can never be
// valid regardless of the source.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.QueueSize < 0 {
		return fmt.Errorf("%w: negative queue size %d", ErrInvalidWorkerConfigs, cfg.Workers.QueueSize)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.APIID <= 0 || cfg.App.APIHash == "" {
		return fmt.Errorf("%w: api id and api hash are required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PollTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.QueueSize <= 0 || cfg.Workers.RenderTick <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.TUI.PromptMode != PromptModeTUI && cfg.TUI.PromptMode != PromptModeLine {
		return fmt.Errorf("%w: unknown prompt mode %q", ErrInvalidTUIConfigs, cfg.TUI.PromptMode)
	}

	return nil
}
