// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
//
//	{
//	  "app": {"api_id": 12345, "api_hash": "0123abcd"},
//	  "adapter": {"address": "localhost:8081", "request_timeout": "15s"}
//	}
type StructuredJSONConfig struct {
	App struct {
		APIID   int32  `json:"api_id"`
		APIHash string `json:"api_hash"`
	} `json:"app"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		PollTimeout    Duration `json:"poll_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		DatabaseDirectory string `json:"database_directory"`
		FilesDirectory    string `json:"files_directory"`
		LanguageCode      string `json:"language_code"`
		DeviceModel       string `json:"device_model"`
		UseTestDC         bool   `json:"use_test_dc"`
		LogVerbosity      int    `json:"log_verbosity"`
	} `json:"session,omitempty"`

	Workers struct {
		QueueSize  int      `json:"queue_size"`
		RenderTick Duration `json:"render_tick"`
	} `json:"workers,omitempty"`

	TUI struct {
		PromptMode  string `json:"prompt"`
		Markdown    bool   `json:"markdown"`
		HistorySize int    `json:"history_size"`
	} `json:"tui,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIID:   jsonCfg.App.APIID,
			APIHash: jsonCfg.App.APIHash,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PollTimeout:    time.Duration(jsonCfg.Adapter.PollTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Session: Session{
			DatabaseDirectory: jsonCfg.Session.DatabaseDirectory,
			FilesDirectory:    jsonCfg.Session.FilesDirectory,
			LanguageCode:      jsonCfg.Session.LanguageCode,
			DeviceModel:       jsonCfg.Session.DeviceModel,
			UseTestDC:         jsonCfg.Session.UseTestDC,
			LogVerbosity:      jsonCfg.Session.LogVerbosity,
		},
		Workers: Workers{
			QueueSize:  jsonCfg.Workers.QueueSize,
			RenderTick: time.Duration(jsonCfg.Workers.RenderTick),
		},
		TUI: TUI{
			PromptMode:  jsonCfg.TUI.PromptMode,
			Markdown:    jsonCfg.TUI.Markdown,
			HistorySize: jsonCfg.TUI.HistorySize,
		},
		Log:          Log{Path: jsonCfg.Log.Path},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
