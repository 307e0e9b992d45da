// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Update is one event pushed by the messaging library. Only the variants
// the client reacts to are modelled; every other event is an [UpdateUnknown].
type Update interface {
	// UpdateType returns the gateway "@type" of the update.
	UpdateType() string
	isUpdate()
}

// Gateway "@type" names of the modelled updates.
const (
	TypeUpdateAuthorizationState = "updateAuthorizationState"
	TypeUpdateNewMessage         = "updateNewMessage"
)

// UpdateAuthorizationState reports a transition of the login handshake.
type UpdateAuthorizationState struct {
	State AuthorizationState
}

// UpdateNewMessage reports a message that has just arrived.
type UpdateNewMessage struct {
	Message Message
}

// UpdateUnknown is the catch-all for updates the client ignores.
type UpdateUnknown struct {
	Type string
}

func (UpdateAuthorizationState) UpdateType() string { return TypeUpdateAuthorizationState }
func (UpdateNewMessage) UpdateType() string         { return TypeUpdateNewMessage }
func (u UpdateUnknown) UpdateType() string          { return u.Type }

func (UpdateAuthorizationState) isUpdate() {}
func (UpdateNewMessage) isUpdate()         {}
func (UpdateUnknown) isUpdate()            {}
