// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the boundary to the messaging library.
//
// The protocol, encryption and session persistence are not implemented in
// this repository. [Messenger] describes what the client needs from the
// library: create a session, exchange typed requests and pull a stream of
// typed updates. The shipped implementation ([NewGatewayAdapter]) reaches a
// messaging gateway that hosts the library: requests go over HTTP, updates
// arrive over a WebSocket.
//
// Transport failures are mapped to the sentinel errors in errors.go; errors
// produced by the library itself surface as *models.RequestError so callers
// can show the human-readable message verbatim.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tdterm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/messenger_mock.go -package=mock

// Messenger is the messaging-library contract consumed by the client.
type Messenger interface {
	// CreateSession creates a new library session and starts delivering its
	// updates to ReceiveUpdate.
	CreateSession(ctx context.Context) (models.SessionID, error)

	// ReceiveUpdate waits up to timeout for the next update of any session.
	// ok is false when nothing arrived in time or the adapter is closed;
	// that is not an error.
	ReceiveUpdate(timeout time.Duration) (update models.Update, session models.SessionID, ok bool)

	// Err is nil while updates can still arrive. Once it is non-nil no
	// further update will be delivered, so callers stop polling.
	Err() error

	// SetSessionParameters answers the "wait parameters" authorization state.
	SetSessionParameters(ctx context.Context, params models.SessionParameters, session models.SessionID) error

	// SubmitPhoneNumber answers the "wait phone number" authorization state.
	SubmitPhoneNumber(ctx context.Context, phoneNumber string, session models.SessionID) error

	// SubmitCode answers the "wait code" authorization state.
	SubmitCode(ctx context.Context, code string, session models.SessionID) error

	// GetMe returns the identity of the authorized account.
	GetMe(ctx context.Context, session models.SessionID) (models.User, error)

	// CloseSession asks the library to close the session. The session
	// reports the closed authorization state once it is done.
	CloseSession(ctx context.Context, session models.SessionID) error

	// SetLogVerbosity sets the library's own log level. Any request makes the
	// library start delivering updates, so the client issues this one first.
	SetLogVerbosity(ctx context.Context, level int, session models.SessionID) error
}
