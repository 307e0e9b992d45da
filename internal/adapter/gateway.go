// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tdterm/internal/config"
	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/utils"
	"github.com/MKhiriev/go-tdterm/models"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
)

const (
	sessionsPath = "/api/sessions"
	// updateQueueSize bounds the updates decoded but not yet received.
	updateQueueSize = 64
)

// Gateway request "@type" names.
const (
	requestSetParameters = "setTdlibParameters"
	requestPhoneNumber   = "setAuthenticationPhoneNumber"
	requestCheckCode     = "checkAuthenticationCode"
	requestGetMe         = "getMe"
	requestClose         = "close"
	requestSetLogLevel   = "setLogVerbosityLevel"
	requestIDField       = "@extra"
	requestTypeField     = "@type"
)

type sessionUpdate struct {
	update  models.Update
	session models.SessionID
}

var _ Messenger = (*GatewayAdapter)(nil)

// GatewayAdapter is the [Messenger] talking to the messaging gateway. Close
// drops every update stream.
type GatewayAdapter struct {
	client *resty.Client
	dialer *websocket.Dialer
	wsURL  string
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	updates chan sessionUpdate
	done    chan struct{}
	close   sync.Once
	wg      sync.WaitGroup

	// lost is closed when an update stream ends on its own; lostErr is
	// written once before that.
	lost     chan struct{}
	lostOnce sync.Once
	lostErr  error

	mu    sync.Mutex
	conns map[models.SessionID]*websocket.Conn
}

// NewGatewayAdapter returns an adapter for the gateway at cfg.HTTPAddress.
// No connection is made until CreateSession.
func NewGatewayAdapter(cfg config.ClientAdapter, log *logger.Logger) (*GatewayAdapter, error) {
	if cfg.HTTPAddress == "" {
		return nil, fmt.Errorf("%w: empty gateway address", ErrBadRequest)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeout
	}

	address := strings.TrimRight(cfg.HTTPAddress, "/")
	cli := resty.New().
		SetBaseURL("http://"+address).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	g := &GatewayAdapter{
		client:  cli,
		dialer:  &websocket.Dialer{HandshakeTimeout: cfg.RequestTimeout},
		wsURL:   "ws://" + address,
		ids:     utils.NewUUIDGenerator(),
		logger:  log.GetChildLogger("gateway"),
		updates: make(chan sessionUpdate, updateQueueSize),
		done:    make(chan struct{}),
		lost:    make(chan struct{}),
		conns:   make(map[models.SessionID]*websocket.Conn),
	}
	cli.OnBeforeRequest(g.withTraceID).OnAfterResponse(g.withLogging)

	return g, nil
}

func (g *GatewayAdapter) CreateSession(ctx context.Context) (models.SessionID, error) {
	if g.isClosed() {
		return 0, ErrAdapterClosed
	}

	resp, err := g.client.R().
		SetContext(ctx).
		Post(sessionsPath)
	if err != nil {
		return 0, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var created struct {
		SessionID *int32 `json:"session_id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return 0, fmt.Errorf("create session decode: %w", err)
	}
	if created.SessionID == nil {
		return 0, fmt.Errorf("%w: no session_id in response", ErrUnexpectedResponse)
	}
	session := models.SessionID(*created.SessionID)

	if err = g.openStream(ctx, session); err != nil {
		return 0, err
	}

	g.logger.Info().Str("func", "GatewayAdapter.CreateSession").Stringer("session", session).Msg("session created")
	return session, nil
}

func (g *GatewayAdapter) ReceiveUpdate(timeout time.Duration) (models.Update, models.SessionID, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case su := <-g.updates:
		return su.update, su.session, true
	case <-timer.C:
		return nil, 0, false
	case <-g.done:
		return nil, 0, false
	case <-g.lost:
		// updates read before the loss are still delivered
		select {
		case su := <-g.updates:
			return su.update, su.session, true
		default:
			return nil, 0, false
		}
	}
}

// Err reports why updates stopped for good: [ErrStreamClosed] once a
// stream has ended, [ErrAdapterClosed] after Close. It is nil while updates
// can still arrive.
func (g *GatewayAdapter) Err() error {
	select {
	case <-g.lost:
		return g.lostErr
	default:
	}
	if g.isClosed() {
		return ErrAdapterClosed
	}
	return nil
}

func (g *GatewayAdapter) SetSessionParameters(ctx context.Context, params models.SessionParameters, session models.SessionID) error {
	fields, err := toFields(params)
	if err != nil {
		return fmt.Errorf("encode session parameters: %w", err)
	}

	body, err := g.send(ctx, session, requestSetParameters, fields)
	if err != nil {
		return err
	}
	return expectOK(body)
}

func (g *GatewayAdapter) SubmitPhoneNumber(ctx context.Context, phoneNumber string, session models.SessionID) error {
	body, err := g.send(ctx, session, requestPhoneNumber, map[string]any{
		"phone_number": phoneNumber,
		"settings":     nil,
	})
	if err != nil {
		return err
	}
	return expectOK(body)
}

func (g *GatewayAdapter) SubmitCode(ctx context.Context, code string, session models.SessionID) error {
	body, err := g.send(ctx, session, requestCheckCode, map[string]any{"code": code})
	if err != nil {
		return err
	}
	return expectOK(body)
}

func (g *GatewayAdapter) GetMe(ctx context.Context, session models.SessionID) (models.User, error) {
	body, err := g.send(ctx, session, requestGetMe, nil)
	if err != nil {
		return models.User{}, err
	}

	user, err := models.DecodeUser(body)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return user, nil
}

func (g *GatewayAdapter) CloseSession(ctx context.Context, session models.SessionID) error {
	body, err := g.send(ctx, session, requestClose, nil)
	if err != nil {
		return err
	}
	return expectOK(body)
}

func (g *GatewayAdapter) SetLogVerbosity(ctx context.Context, level int, session models.SessionID) error {
	body, err := g.send(ctx, session, requestSetLogLevel, map[string]any{"new_verbosity_level": level})
	if err != nil {
		return err
	}
	return expectOK(body)
}

// Close stops every update stream and makes ReceiveUpdate return
// immediately. It is safe to call more than once.
func (g *GatewayAdapter) Close() error {
	g.close.Do(func() {
		close(g.done)

		g.mu.Lock()
		for session, conn := range g.conns {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
			delete(g.conns, session)
		}
		g.mu.Unlock()
	})

	g.wg.Wait()
	return nil
}

// send issues one typed request and returns the raw response object.
// Library errors are returned as *models.RequestError, including those sent
// with a 2xx status.
func (g *GatewayAdapter) send(ctx context.Context, session models.SessionID, requestType string, fields map[string]any) ([]byte, error) {
	if g.isClosed() {
		return nil, ErrAdapterClosed
	}

	payload := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload[requestTypeField] = requestType
	requestID := g.ids.Generate()
	payload[requestIDField] = requestID

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, requestID).
		SetBody(payload).
		Post(sessionsPath + "/" + url.PathEscape(session.String()) + "/send")
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", requestType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Debug().Err(err).Str("func", "GatewayAdapter.send").Str("request", requestType).Msg("request failed")
		return nil, err
	}
	if reqErr := decodeRequestError(resp.Body()); reqErr != nil {
		g.logger.Debug().Err(reqErr).Str("func", "GatewayAdapter.send").Str("request", requestType).Msg("request rejected")
		return nil, reqErr
	}

	return resp.Body(), nil
}

func (g *GatewayAdapter) isClosed() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// toFields flattens v into a JSON object map so it can be merged with the
// request "@type".
func toFields(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
