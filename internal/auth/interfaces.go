// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"

	"github.com/MKhiriev/go-tdterm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

// Authenticator answers the authorization states that need the library.
type Authenticator interface {
	SetSessionParameters(ctx context.Context, params models.SessionParameters, session models.SessionID) error
	SubmitPhoneNumber(ctx context.Context, phoneNumber string, session models.SessionID) error
	SubmitCode(ctx context.Context, code string, session models.SessionID) error
}

// Prompter asks the operator a question and returns the answer without
// surrounding whitespace. When secret is set the answer is not echoed.
type Prompter interface {
	Prompt(ctx context.Context, question string, secret bool) (string, error)
}
