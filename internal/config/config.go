// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the messaging application credentials.
	App App `envPrefix:"APP_"`

	// Adapter holds the messaging gateway address and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local message history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the static session parameters sent to the messaging
	// library.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds queue sizes and loop intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// TUI holds terminal presentation settings.
	TUI TUI `envPrefix:"TUI_"`

	// Log holds the log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the application identifier and secret issued by the messaging
// service.
type App struct {
	// APIID is the application identifier.
	// Env: APP_API_ID
	APIID int32 `env:"API_ID"`

	// APIHash is the application secret. Must be kept confidential.
	// Env: APP_API_HASH
	APIHash string `env:"API_HASH"`
}

// Adapter holds the messaging gateway settings.
type Adapter struct {
	// HTTPAddress is the gateway address in "host:port" format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the gateway.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollTimeout is how long one update poll waits before reporting that
	// nothing arrived.
	// Env: ADAPTER_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the message history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the SQLite file path. Empty disables history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds the static fields of the "set session parameters" request.
type Session struct {
	// DatabaseDirectory is where the messaging library keeps its state.
	// Env: SESSION_DATABASE_DIRECTORY
	DatabaseDirectory string `env:"DATABASE_DIRECTORY"`

	// FilesDirectory is where downloaded files are kept.
	// Env: SESSION_FILES_DIRECTORY
	FilesDirectory string `env:"FILES_DIRECTORY"`

	// LanguageCode is the IETF language tag reported to the service.
	// Env: SESSION_LANGUAGE_CODE
	LanguageCode string `env:"LANGUAGE_CODE"`

	// DeviceModel is the device model reported to the service.
	// Env: SESSION_DEVICE_MODEL
	DeviceModel string `env:"DEVICE_MODEL"`

	// UseTestDC selects the service's test environment.
	// Env: SESSION_USE_TEST_DC
	UseTestDC bool `env:"USE_TEST_DC"`

	// LogVerbosity is the messaging library's own log level.
	// Env: SESSION_LOG_VERBOSITY
	LogVerbosity int `env:"LOG_VERBOSITY"`
}

// Workers holds queue and loop settings.
type Workers struct {
	// QueueSize is the capacity of the authorization and render channels.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// RenderTick is the render loop polling interval.
	// Env: WORKERS_RENDER_TICK
	RenderTick time.Duration `env:"RENDER_TICK"`
}

// TUI holds terminal presentation settings.
type TUI struct {
	// PromptMode selects how the operator is asked for input: "tui" for an
	// interactive input field, "line" for plain line reads.
	// Env: TUI_PROMPT
	PromptMode string `env:"PROMPT"`

	// Markdown enables markdown rendering of message text.
	// Env: TUI_MARKDOWN
	Markdown bool `env:"MARKDOWN"`

	// HistorySize is how many stored messages are shown on start.
	// Env: TUI_HISTORY_SIZE
	HistorySize int `env:"HISTORY_SIZE"`
}

// Log holds log output settings.
type Log struct {
	// Path is the log file. Empty means a file next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// Prompt modes accepted by [TUI.PromptMode].
const (
	PromptModeTUI  = "tui"
	PromptModeLine = "line"
)

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
