// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied below every other configuration source.
const (
	DefaultGatewayAddress    = "localhost:8081"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultPollTimeout       = time.Second
	DefaultDatabaseDirectory = "get_me_db"
	DefaultLanguageCode      = "en"
	DefaultDeviceModel       = "Desktop"
	DefaultQueueSize         = 5
	DefaultRenderTick        = 10 * time.Millisecond
	DefaultHistorySize       = 50
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultGatewayAddress,
			RequestTimeout: DefaultRequestTimeout,
			PollTimeout:    DefaultPollTimeout,
		},
		Session: Session{
			DatabaseDirectory: DefaultDatabaseDirectory,
			LanguageCode:      DefaultLanguageCode,
			DeviceModel:       DefaultDeviceModel,
		},
		Workers: Workers{
			QueueSize:  DefaultQueueSize,
			RenderTick: DefaultRenderTick,
		},
		TUI: TUI{
			PromptMode:  PromptModeTUI,
			HistorySize: DefaultHistorySize,
		},
	}
}
