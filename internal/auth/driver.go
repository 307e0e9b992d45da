// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth drives a session through the library's login handshake.
//
// The [Driver] consumes authorization states in arrival order and answers
// each one: parameters are sent once per request, the phone number and the
// verification code are prompted for until the library accepts them. Drive
// returns when the session becomes ready or closed, so the same state
// channel can be driven again later (first to Ready, then to Closed after
// the session is asked to close).
package auth

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tdterm/internal/logger"
	"github.com/MKhiriev/go-tdterm/internal/shutdown"
	"github.com/MKhiriev/go-tdterm/models"
)

// Operator prompts.
const (
	PhoneNumberPrompt = "Enter your phone number (include the country calling code):"
	CodePrompt        = "Enter the verification code:"
)

// Driver is the authorization state machine of one client.
type Driver struct {
	auth     Authenticator
	prompter Prompter
	out      io.Writer
	params   models.SessionParameters
	flag     *shutdown.Flag
	logger   *logger.Logger
}

// NewDriver returns a driver that answers with params, asks through
// prompter, prints library errors to out and sets flag when the session
// closes.
func NewDriver(
	auth Authenticator,
	prompter Prompter,
	out io.Writer,
	params models.SessionParameters,
	flag *shutdown.Flag,
	log *logger.Logger,
) *Driver {
	return &Driver{
		auth:     auth,
		prompter: prompter,
		out:      out,
		params:   params,
		flag:     flag,
		logger:   log.GetChildLogger("auth"),
	}
}

// Drive handles states until the session is ready or closed and returns
// states for the next call. A closed session sets the shutdown flag.
//
// Drive has no timeout of its own. It fails on ctx cancellation, on a
// closed state channel ([ErrStatesClosed]) and when the operator cannot be
// prompted ([ErrPrompt]).
func (d *Driver) Drive(
	ctx context.Context,
	session models.SessionID,
	states <-chan models.AuthorizationState,
) (<-chan models.AuthorizationState, error) {
	for {
		var state models.AuthorizationState

		select {
		case <-ctx.Done():
			return states, ctx.Err()
		case s, ok := <-states:
			if !ok {
				return states, ErrStatesClosed
			}
			state = s
		}

		finished, err := d.handle(ctx, session, state)
		if err != nil {
			return states, err
		}
		if finished {
			return states, nil
		}
	}
}

// handle answers one state and reports whether driving is finished.
func (d *Driver) handle(ctx context.Context, session models.SessionID, state models.AuthorizationState) (bool, error) {
	log := d.logger.With().Stringer("session", session).Logger()
	if state == nil {
		return false, nil
	}
	log.Debug().Str("func", "Driver.handle").Str("state", state.AuthorizationType()).Msg("authorization state")

	switch s := state.(type) {
	case models.AuthorizationStateWaitParameters:
		if err := d.auth.SetSessionParameters(ctx, d.params, session); err != nil {
			// not retried
			d.report(err)
		}
		return false, nil

	case models.AuthorizationStateWaitPhoneNumber:
		return false, d.askUntilAccepted(ctx, PhoneNumberPrompt, false, func(answer string) error {
			return d.auth.SubmitPhoneNumber(ctx, answer, session)
		})

	case models.AuthorizationStateWaitCode:
		log.Debug().Str("func", "Driver.handle").Int("code_length", s.CodeInfo.Length).Msg("verification code sent")
		return false, d.askUntilAccepted(ctx, CodePrompt, true, func(answer string) error {
			return d.auth.SubmitCode(ctx, answer, session)
		})

	case models.AuthorizationStateReady:
		log.Info().Str("func", "Driver.handle").Msg("authorized")
		return true, nil

	case models.AuthorizationStateClosed:
		log.Info().Str("func", "Driver.handle").Msg("session closed")
		d.flag.Set()
		return true, nil

	case models.AuthorizationStateWaitPassword:
		log.Warn().Str("func", "Driver.handle").Msg("two-step verification is not supported")
		return false, nil

	default:
		return false, nil
	}
}

// askUntilAccepted prompts with question and submits the answer until
// submit succeeds. Each rejection is printed before asking again.
func (d *Driver) askUntilAccepted(ctx context.Context, question string, secret bool, submit func(string) error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := d.prompter.Prompt(ctx, question, secret)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPrompt, err)
		}

		if err = submit(answer); err == nil {
			return nil
		}
		d.logger.Debug().Err(err).Str("func", "Driver.askUntilAccepted").Int("attempt", attempt).Msg("answer rejected")
		d.report(err)
	}
}

// report prints the library's message for err on the operator output.
func (d *Driver) report(err error) {
	if _, werr := fmt.Fprintln(d.out, models.OperatorMessage(err)); werr != nil {
		d.logger.Err(werr).Str("func", "Driver.report").Msg("failed to print error")
	}
}
