// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthorizationState is the messaging library's current phase of its login
// handshake. The set of implementations is closed; anything the client does
// not know about arrives as [AuthorizationStateUnknown].
type AuthorizationState interface {
	// AuthorizationType returns the gateway "@type" of the state.
	AuthorizationType() string
	isAuthorizationState()
}

// Gateway "@type" names of the authorization states.
const (
	TypeAuthorizationStateWaitParameters  = "authorizationStateWaitTdlibParameters"
	TypeAuthorizationStateWaitPhoneNumber = "authorizationStateWaitPhoneNumber"
	TypeAuthorizationStateWaitCode        = "authorizationStateWaitCode"
	TypeAuthorizationStateWaitPassword    = "authorizationStateWaitPassword"
	TypeAuthorizationStateReady           = "authorizationStateReady"
	TypeAuthorizationStateLoggingOut      = "authorizationStateLoggingOut"
	TypeAuthorizationStateClosing         = "authorizationStateClosing"
	TypeAuthorizationStateClosed          = "authorizationStateClosed"
)

// AuthorizationStateWaitParameters means the session needs its parameters
// (application id, hash, storage directories) before anything else.
type AuthorizationStateWaitParameters struct{}

// AuthorizationStateWaitPhoneNumber means the operator has to provide the
// account phone number.
type AuthorizationStateWaitPhoneNumber struct{}

// AuthorizationStateWaitCode means a verification code was sent and has to
// be entered.
type AuthorizationStateWaitCode struct {
	// CodeInfo describes where the code was delivered.
	CodeInfo CodeInfo
}

// CodeInfo describes a sent verification code.
type CodeInfo struct {
	PhoneNumber string `json:"phone_number"`
	// Length is the expected number of digits, zero when unknown.
	Length int `json:"length"`
	// Timeout is the number of seconds before the code can be re-sent.
	Timeout int `json:"timeout"`
}

// AuthorizationStateWaitPassword means the account has two-step
// verification enabled. The client does not handle it.
type AuthorizationStateWaitPassword struct {
	PasswordHint string
}

// AuthorizationStateReady means the session is authorized.
type AuthorizationStateReady struct{}

// AuthorizationStateLoggingOut means a log out is in progress.
type AuthorizationStateLoggingOut struct{}

// AuthorizationStateClosing means the session is being closed.
type AuthorizationStateClosing struct{}

// AuthorizationStateClosed means the session is closed and no more updates
// will arrive for it.
type AuthorizationStateClosed struct{}

// AuthorizationStateUnknown carries any state the client does not know.
type AuthorizationStateUnknown struct {
	Type string
}

func (AuthorizationStateWaitParameters) AuthorizationType() string {
	return TypeAuthorizationStateWaitParameters
}
func (AuthorizationStateWaitPhoneNumber) AuthorizationType() string {
	return TypeAuthorizationStateWaitPhoneNumber
}
func (AuthorizationStateWaitCode) AuthorizationType() string { return TypeAuthorizationStateWaitCode }
func (AuthorizationStateWaitPassword) AuthorizationType() string {
	return TypeAuthorizationStateWaitPassword
}
func (AuthorizationStateReady) AuthorizationType() string { return TypeAuthorizationStateReady }
func (AuthorizationStateLoggingOut) AuthorizationType() string {
	return TypeAuthorizationStateLoggingOut
}
func (AuthorizationStateClosing) AuthorizationType() string { return TypeAuthorizationStateClosing }
func (AuthorizationStateClosed) AuthorizationType() string  { return TypeAuthorizationStateClosed }
func (s AuthorizationStateUnknown) AuthorizationType() string {
	return s.Type
}

func (AuthorizationStateWaitParameters) isAuthorizationState()  {}
func (AuthorizationStateWaitPhoneNumber) isAuthorizationState() {}
func (AuthorizationStateWaitCode) isAuthorizationState()        {}
func (AuthorizationStateWaitPassword) isAuthorizationState()    {}
func (AuthorizationStateReady) isAuthorizationState()           {}
func (AuthorizationStateLoggingOut) isAuthorizationState()      {}
func (AuthorizationStateClosing) isAuthorizationState()         {}
func (AuthorizationStateClosed) isAuthorizationState()          {}
func (AuthorizationStateUnknown) isAuthorizationState()         {}
