// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs one messaging session from login to logout.
//
// [App.Run] creates the session, starts the render loop and the update
// dispatcher, drives the login handshake to the ready state, greets the
// account, closes the session, drives the handshake to the closed state and
// stops both loops.
package client
