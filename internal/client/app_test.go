// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tdterm/internal/adapter"
	"github.com/MKhiriev/go-tdterm/internal/auth"
	"github.com/MKhiriev/go-tdterm/internal/config"
	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/mock"
	"github.com/MKhiriev/go-tdterm/internal/tui"
	"github.com/MKhiriev/go-tdterm/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testSession = models.SessionID(7)

// recordingTerminal is a tui.Terminal keeping every call.
type recordingTerminal struct {
	mu       sync.Mutex
	events   []string
	enterErr error
}

func (r *recordingTerminal) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingTerminal) Enter() error {
	r.add("enter")
	return r.enterErr
}

func (r *recordingTerminal) Restore() error {
	r.add("restore")
	return nil
}

func (r *recordingTerminal) Draw(frame string) error {
	r.add("draw:" + frame)
	return nil
}

func (r *recordingTerminal) DrawPrompt(view string) error {
	r.add("prompt:" + view)
	return nil
}

func (r *recordingTerminal) Size() (int, int, error) { return 80, 24, nil }

func (r *recordingTerminal) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recordingTerminal) count(event string) int {
	n := 0
	for _, e := range r.snapshot() {
		if e == event {
			n++
		}
	}
	return n
}

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{APIID: 94575, APIHash: "hash"},
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8081", RequestTimeout: time.Second, PollTimeout: 5 * time.Millisecond},
		Session: config.ClientSession{DatabaseDirectory: "get_me_db", LanguageCode: "en", DeviceModel: "Desktop"},
		Workers: config.ClientWorkers{QueueSize: 5, RenderTick: time.Millisecond},
		TUI:     config.ClientTUI{PromptMode: config.PromptModeLine, HistorySize: 50},
	}
}

type testApp struct {
	app       *App
	messenger *mock.MockMessenger
	prompter  *mock.MockPrompter
	history   *mock.MockMessageRepository
	terminal  *recordingTerminal
	out       *bytes.Buffer
	updates   chan models.Update

	mu        sync.Mutex
	streamErr error
}

// newTestApp wires an App to gomock collaborators. Updates pushed
// to updates are served by the messenger's ReceiveUpdate.
func newTestApp(t *testing.T, withHistory bool) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		messenger: mock.NewMockMessenger(ctrl),
		prompter:  mock.NewMockPrompter(ctrl),
		terminal:  &recordingTerminal{},
		out:       &bytes.Buffer{},
		updates:   make(chan models.Update, 16),
	}

	ta.messenger.EXPECT().ReceiveUpdate(gomock.Any()).DoAndReturn(
		func(timeout time.Duration) (models.Update, models.SessionID, bool) {
			select {
			case u := <-ta.updates:
				return u, testSession, true
			case <-time.After(timeout):
				return nil, 0, false
			}
		}).AnyTimes()
	ta.messenger.EXPECT().Err().DoAndReturn(func() error {
		ta.mu.Lock()
		defer ta.mu.Unlock()
		return ta.streamErr
	}).AnyTimes()

	deps := Dependencies{
		Messenger: ta.messenger,
		Terminal:  ta.terminal,
		Prompter:  ta.prompter,
		Output:    ta.out,
	}
	if withHistory {
		ta.history = mock.NewMockMessageRepository(ctrl)
		deps.History = ta.history
	}

	app, err := NewApp(deps, testConfig(), models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	require.NoError(t, err)
	ta.app = app
	return ta
}

func (ta *testApp) push(updates ...models.Update) {
	for _, u := range updates {
		ta.updates <- u
	}
}

// loseStream makes the messenger report that no more updates will come.
func (ta *testApp) loseStream(err error) {
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.streamErr = err
}

func stateUpdate(s models.AuthorizationState) models.Update {
	return models.UpdateAuthorizationState{State: s}
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestApp_Run_FullSession(t *testing.T) {
	ta := newTestApp(t, true)

	stored := models.Message{ID: 1, ChatID: 2, SenderID: 3, Date: time.Unix(1700000000, 0), Text: "from history"}
	incoming := models.Message{ID: 2, ChatID: 2, SenderID: 3, Date: time.Unix(1700000100, 0), Text: "fresh"}

	wantParams := models.SessionParameters{
		DatabaseDirectory:  "get_me_db",
		APIID:              94575,
		APIHash:            "hash",
		SystemLanguageCode: "en",
		DeviceModel:        "Desktop",
		ApplicationVersion: "1.2.3",
		IgnoreFileNames:    true,
	}

	ta.history.EXPECT().RecentMessages(gomock.Any(), 50).Return([]models.Message{stored}, nil)
	ta.history.EXPECT().SaveMessage(gomock.Any(), testSession, incoming).Return(nil)

	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				ta.push(
					stateUpdate(models.AuthorizationStateWaitParameters{}),
					stateUpdate(models.AuthorizationStateWaitPhoneNumber{}),
					stateUpdate(models.AuthorizationStateWaitCode{}),
					models.UpdateNewMessage{Message: incoming},
					stateUpdate(models.AuthorizationStateReady{}),
				)
				return nil
			}),
		ta.messenger.EXPECT().SetSessionParameters(gomock.Any(), wantParams, testSession).Return(nil),
		ta.prompter.EXPECT().Prompt(gomock.Any(), auth.PhoneNumberPrompt, false).Return("+31600000000", nil),
		ta.messenger.EXPECT().SubmitPhoneNumber(gomock.Any(), "+31600000000", testSession).Return(nil),
		ta.prompter.EXPECT().Prompt(gomock.Any(), auth.CodePrompt, true).Return("12345", nil),
		ta.messenger.EXPECT().SubmitCode(gomock.Any(), "12345", testSession).Return(nil),
		ta.messenger.EXPECT().GetMe(gomock.Any(), testSession).Return(models.User{ID: 9, FirstName: "Ada"}, nil),
		ta.messenger.EXPECT().CloseSession(gomock.Any(), testSession).DoAndReturn(
			func(context.Context, models.SessionID) error {
				ta.push(
					stateUpdate(models.AuthorizationStateClosing{}),
					stateUpdate(models.AuthorizationStateClosed{}),
				)
				return nil
			}),
	)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Equal(t, "Hi, I'm Ada\r\n", ta.out.String())

	events := ta.terminal.snapshot()
	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, "enter", events[0])
	assert.Contains(t, events[1], "from history")
	assert.Equal(t, "restore", events[len(events)-1])
	assert.Equal(t, 1, ta.terminal.count("restore"))
}

func TestApp_Run_ClosedBeforeReady(t *testing.T) {
	ta := newTestApp(t, false)

	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				ta.push(stateUpdate(models.AuthorizationStateClosed{}))
				return nil
			}),
	)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Empty(t, ta.out.String())
	assert.Equal(t, 1, ta.terminal.count("restore"))
}

func TestApp_Run_PromptQuit(t *testing.T) {
	ta := newTestApp(t, false)

	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				ta.push(stateUpdate(models.AuthorizationStateWaitPhoneNumber{}))
				return nil
			}),
		ta.prompter.EXPECT().Prompt(gomock.Any(), auth.PhoneNumberPrompt, false).Return("", tui.ErrUserQuit),
	)

	err := ta.app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrUserQuit)
	assert.ErrorIs(t, err, auth.ErrPrompt)
	assert.Equal(t, 1, ta.terminal.count("restore"))
}

func TestApp_Run_ContextCancelled(t *testing.T) {
	ta := newTestApp(t, false)

	ctx, cancel := context.WithCancel(context.Background())

	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				cancel()
				return nil
			}),
	)

	err := ta.app.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, auth.ErrStatesClosed), err.Error())
	assert.Equal(t, 1, ta.terminal.count("restore"))
}

func TestApp_Run_UpdateStreamLost(t *testing.T) {
	ta := newTestApp(t, false)

	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				ta.loseStream(fmt.Errorf("%w: websocket: close 1006 (abnormal closure)", adapter.ErrStreamClosed))
				return nil
			}),
	)

	done := make(chan error, 1)
	go func() { done <- ta.app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrStatesClosed)
		assert.ErrorIs(t, err, adapter.ErrStreamClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after the update stream was lost")
	}
	assert.Equal(t, 1, ta.terminal.count("restore"))
}

func TestApp_Run_SetupFailures(t *testing.T) {
	t.Run("create session", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(models.SessionID(0), errors.New("connection refused"))

		err := ta.app.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create session")
		assert.Empty(t, ta.terminal.snapshot())
	})

	t.Run("terminal", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.terminal.enterErr = errors.New("not a tty")
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil)

		err := ta.app.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start render loop")
	})

	t.Run("log verbosity", func(t *testing.T) {
		ta := newTestApp(t, false)
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil)
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).
			Return(&models.RequestError{Code: 400, Message: "Wrong parameter"})

		err := ta.app.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Wrong parameter", models.OperatorMessage(err))
		assert.Equal(t, 1, ta.terminal.count("restore"))
	})
}

func TestApp_Run_HistoryFailureIsNotFatal(t *testing.T) {
	ta := newTestApp(t, true)

	ta.history.EXPECT().RecentMessages(gomock.Any(), 50).Return(nil, errors.New("no such table: messages"))
	gomock.InOrder(
		ta.messenger.EXPECT().CreateSession(gomock.Any()).Return(testSession, nil),
		ta.messenger.EXPECT().SetLogVerbosity(gomock.Any(), 0, testSession).DoAndReturn(
			func(context.Context, int, models.SessionID) error {
				ta.push(stateUpdate(models.AuthorizationStateClosed{}))
				return nil
			}),
	)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.True(t, strings.Contains(ta.terminal.snapshot()[1], "No messages yet."))
}

// ── NewApp ───────────────────────────────────────────────────────────────────

func TestNewApp_MissingDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	full := Dependencies{
		Messenger: mock.NewMockMessenger(ctrl),
		Terminal:  &recordingTerminal{},
		Prompter:  mock.NewMockPrompter(ctrl),
		Output:    &bytes.Buffer{},
	}

	tests := []struct {
		name   string
		mutate func(d *Dependencies)
	}{
		{name: "messenger", mutate: func(d *Dependencies) { d.Messenger = nil }},
		{name: "terminal", mutate: func(d *Dependencies) { d.Terminal = nil }},
		{name: "prompter", mutate: func(d *Dependencies) { d.Prompter = nil }},
		{name: "output", mutate: func(d *Dependencies) { d.Output = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full
			tt.mutate(&deps)

			_, err := NewApp(deps, testConfig(), models.AppBuildInfo{}, logger.Nop())
			require.ErrorIs(t, err, ErrMissingDependency)
			assert.Contains(t, err.Error(), tt.name)
		})
	}

	_, err := NewApp(full, nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewApp(full, testConfig(), models.AppBuildInfo{}, logger.Nop())
	assert.NoError(t, err)
}
