package config

import (
	"fmt"
	"time"
)

// ClientApp holds the messaging application credentials.
type ClientApp struct {
	APIID   int32
	APIHash string
}

// ClientAdapter holds the messaging gateway settings.
type ClientAdapter struct {
	// HTTPAddress is the gateway "host:port".
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// PollTimeout is the wait of a single update poll.
	PollTimeout time.Duration
}

// ClientDB contains the history database settings.
type ClientDB struct {
	// DSN is the SQLite file path; empty disables history.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSession holds the static session parameters.
type ClientSession struct {
	DatabaseDirectory string
	FilesDirectory    string
	LanguageCode      string
	DeviceModel       string
	UseTestDC         bool
	LogVerbosity      int
}

// ClientWorkers contains queue and loop settings.
type ClientWorkers struct {
	QueueSize  int
	RenderTick time.Duration
}

// ClientTUI contains terminal presentation settings.
type ClientTUI struct {
	PromptMode  string
	Markdown    bool
	HistorySize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Session ClientSession
	Workers ClientWorkers
	TUI     ClientTUI
	// LogPath is the log file path.
	LogPath string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIID:   cfg.App.APIID,
			APIHash: cfg.App.APIHash,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PollTimeout:    cfg.Adapter.PollTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Session: ClientSession{
			DatabaseDirectory: cfg.Session.DatabaseDirectory,
			FilesDirectory:    cfg.Session.FilesDirectory,
			LanguageCode:      cfg.Session.LanguageCode,
			DeviceModel:       cfg.Session.DeviceModel,
			UseTestDC:         cfg.Session.UseTestDC,
			LogVerbosity:      cfg.Session.LogVerbosity,
		},
		Workers: ClientWorkers{
			QueueSize:  cfg.Workers.QueueSize,
			RenderTick: cfg.Workers.RenderTick,
		},
		TUI: ClientTUI{
			PromptMode:  cfg.TUI.PromptMode,
			Markdown:    cfg.TUI.Markdown,
			HistorySize: cfg.TUI.HistorySize,
		},
		LogPath: cfg.Log.Path,
	}
}
