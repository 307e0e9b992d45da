// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-tdterm/models"
	"github.com/gorilla/websocket"
)

// openStream dials the session's update socket and starts its reader.
func (g *GatewayAdapter) openStream(ctx context.Context, session models.SessionID) error {
	streamURL := g.wsURL + sessionsPath + "/" + url.PathEscape(session.String()) + "/updates"

	conn, resp, err := g.dialer.DialContext(ctx, streamURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("open update stream: %w", err)
	}

	g.mu.Lock()
	if g.isClosed() {
		g.mu.Unlock()
		_ = conn.Close()
		return ErrAdapterClosed
	}
	g.conns[session] = conn
	g.wg.Add(1)
	g.mu.Unlock()

	go g.readStream(session, conn)
	return nil
}

// readStream decodes update objects from conn until the socket closes or
// the adapter is closed. A full update queue blocks the reader, which in
// turn pushes back on the gateway.
func (g *GatewayAdapter) readStream(session models.SessionID, conn *websocket.Conn) {
	defer g.wg.Done()
	defer g.forget(session, conn)

	log := g.logger.With().Stringer("session", session).Logger()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if g.isClosed() {
				log.Debug().Str("func", "GatewayAdapter.readStream").Msg("update stream closed")
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Str("func", "GatewayAdapter.readStream").Msg("update stream closed by gateway")
			} else {
				log.Err(err).Str("func", "GatewayAdapter.readStream").Msg("update stream broken")
			}
			g.markLost(session, err)
			return
		}

		update, err := models.DecodeUpdate(data)
		if err != nil {
			if errors.Is(err, models.ErrUnknownType) {
				log.Warn().Str("func", "GatewayAdapter.readStream").Msg("update without @type skipped")
				continue
			}
			log.Err(err).Str("func", "GatewayAdapter.readStream").Msg("undecodable update skipped")
			continue
		}

		select {
		case g.updates <- sessionUpdate{update: update, session: session}:
		case <-g.done:
			return
		}
	}
}

// markLost records the first stream that ended while the adapter was open.
func (g *GatewayAdapter) markLost(session models.SessionID, err error) {
	g.lostOnce.Do(func() {
		g.lostErr = fmt.Errorf("%w: session %s: %w", ErrStreamClosed, session, err)
		close(g.lost)
	})
}

func (g *GatewayAdapter) forget(session models.SessionID, conn *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if current, ok := g.conns[session]; ok && current == conn {
		delete(g.conns, session)
	}
	_ = conn.Close()
}
