// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_API_ID":   "12345",
		"APP_API_HASH": "hash",

		"ADAPTER_ADDRESS":         "localhost:8081",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_POLL_TIMEOUT":    "500ms",

		"STORAGE_DB_DSN": "history.db",

		"SESSION_DATABASE_DIRECTORY": "tdlib-db",
		"SESSION_FILES_DIRECTORY":    "tdlib-files",
		"SESSION_LANGUAGE_CODE":      "de",
		"SESSION_DEVICE_MODEL":       "Laptop",
		"SESSION_USE_TEST_DC":        "true",
		"SESSION_LOG_VERBOSITY":      "3",

		"WORKERS_QUEUE_SIZE":  "7",
		"WORKERS_RENDER_TICK": "25ms",

		"TUI_PROMPT":       "line",
		"TUI_MARKDOWN":     "true",
		"TUI_HISTORY_SIZE": "20",

		"LOG_PATH": "/var/log/tdterm.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, int32(12345), cfg.App.APIID)
	assert.Equal(t, "hash", cfg.App.APIHash)
	assert.Equal(t, "localhost:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Adapter.PollTimeout)
	assert.Equal(t, "history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "tdlib-db", cfg.Session.DatabaseDirectory)
	assert.Equal(t, "tdlib-files", cfg.Session.FilesDirectory)
	assert.Equal(t, "de", cfg.Session.LanguageCode)
	assert.Equal(t, "Laptop", cfg.Session.DeviceModel)
	assert.True(t, cfg.Session.UseTestDC)
	assert.Equal(t, 3, cfg.Session.LogVerbosity)
	assert.Equal(t, 7, cfg.Workers.QueueSize)
	assert.Equal(t, 25*time.Millisecond, cfg.Workers.RenderTick)
	assert.Equal(t, "line", cfg.TUI.PromptMode)
	assert.True(t, cfg.TUI.Markdown)
	assert.Equal(t, 20, cfg.TUI.HistorySize)
	assert.Equal(t, "/var/log/tdterm.log", cfg.Log.Path)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "forever")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
