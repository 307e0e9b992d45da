package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{APIID: 1, APIHash: "hash"},
		Adapter: ClientAdapter{HTTPAddress: "localhost:8081", RequestTimeout: time.Second, PollTimeout: time.Second},
		Workers: ClientWorkers{QueueSize: 5, RenderTick: 10 * time.Millisecond},
		TUI:     ClientTUI{PromptMode: PromptModeTUI},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "valid line prompt", mutate: func(cfg *ClientConfig) { cfg.TUI.PromptMode = PromptModeLine }},
		{name: "missing api id", mutate: func(cfg *ClientConfig) { cfg.App.APIID = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing api hash", mutate: func(cfg *ClientConfig) { cfg.App.APIHash = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero request timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero poll timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.PollTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero queue", mutate: func(cfg *ClientConfig) { cfg.Workers.QueueSize = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero tick", mutate: func(cfg *ClientConfig) { cfg.Workers.RenderTick = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "unknown prompt", mutate: func(cfg *ClientConfig) { cfg.TUI.PromptMode = "gui" }, wantErr: ErrInvalidTUIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
