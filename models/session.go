// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the value types shared between the transport
// adapter, the update dispatcher, the authorization driver and the terminal
// renderer.
//
// Most of the types here are closed variants: an interface with an
// unexported marker method and a fixed set of implementations, each of which
// mirrors one "@type" of the messaging gateway's JSON objects. Unknown
// gateway types are never an error; they decode into the explicit catch-all
// case of the corresponding variant.
package models

import "strconv"

// SessionID is the opaque handle of one messaging-library session.
//
// It is created once by the orchestrator and then copied by value into every
// call that needs to address the session. Nothing mutates it.
type SessionID int32

// String returns the decimal form of the session handle.
func (s SessionID) String() string {
	return strconv.FormatInt(int64(s), 10)
}
