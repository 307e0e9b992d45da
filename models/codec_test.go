// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── DecodeUpdate ─────────────────────────────────────────────────────────────

func TestDecodeUpdate_AuthorizationState(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  AuthorizationState
	}{
		{"parameters", `{"@type":"authorizationStateWaitTdlibParameters"}`, AuthorizationStateWaitParameters{}},
		{"phone", `{"@type":"authorizationStateWaitPhoneNumber"}`, AuthorizationStateWaitPhoneNumber{}},
		{"ready", `{"@type":"authorizationStateReady"}`, AuthorizationStateReady{}},
		{"closing", `{"@type":"authorizationStateClosing"}`, AuthorizationStateClosing{}},
		{"closed", `{"@type":"authorizationStateClosed"}`, AuthorizationStateClosed{}},
		{"unknown", `{"@type":"authorizationStateWaitRegistration"}`, AuthorizationStateUnknown{Type: "authorizationStateWaitRegistration"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"@type":"updateAuthorizationState","authorization_state":` + tt.state + `}`)

			update, err := DecodeUpdate(data)
			require.NoError(t, err)
			assert.Equal(t, UpdateAuthorizationState{State: tt.want}, update)
		})
	}
}

func TestDecodeUpdate_WaitCodeCarriesCodeInfo(t *testing.T) {
	data := []byte(`{"@type":"updateAuthorizationState","authorization_state":{
		"@type":"authorizationStateWaitCode",
		"code_info":{"phone_number":"+31600000000","type":{"@type":"authenticationCodeTypeSms","length":5},"timeout":60}}}`)

	update, err := DecodeUpdate(data)
	require.NoError(t, err)

	state := update.(UpdateAuthorizationState).State
	assert.Equal(t, AuthorizationStateWaitCode{CodeInfo: CodeInfo{
		PhoneNumber: "+31600000000",
		Length:      5,
		Timeout:     60,
	}}, state)
}

func TestDecodeUpdate_NewTextMessage(t *testing.T) {
	data := []byte(`{"@type":"updateNewMessage","message":{
		"@type":"message","id":42,"chat_id":7,
		"sender_id":{"@type":"messageSenderUser","user_id":99},
		"date":1700000000,
		"content":{"@type":"messageText","text":{"@type":"formattedText","text":"hello"}}}}`)

	update, err := DecodeUpdate(data)
	require.NoError(t, err)

	assert.Equal(t, UpdateNewMessage{Message: Message{
		ID:       42,
		ChatID:   7,
		SenderID: 99,
		Date:     time.Unix(1700000000, 0).UTC(),
		Text:     "hello",
	}}, update)
}

func TestDecodeUpdate_NonTextMessage(t *testing.T) {
	data := []byte(`{"@type":"updateNewMessage","message":{"id":1,"chat_id":2,
		"sender_id":{"@type":"messageSenderChat","chat_id":-100},
		"content":{"@type":"messagePhoto","caption":{"text":"look"}}}}`)

	update, err := DecodeUpdate(data)
	require.NoError(t, err)

	msg := update.(UpdateNewMessage).Message
	assert.Equal(t, int64(-100), msg.SenderID)
	assert.Equal(t, "[messagePhoto] look", msg.Text)
}

func TestDecodeUpdate_UnknownIsNotAnError(t *testing.T) {
	update, err := DecodeUpdate([]byte(`{"@type":"updateUserStatus","user_id":1}`))
	require.NoError(t, err)
	assert.Equal(t, UpdateUnknown{Type: "updateUserStatus"}, update)
	assert.Equal(t, "updateUserStatus", update.UpdateType())
}

func TestDecodeUpdate_Errors(t *testing.T) {
	_, err := DecodeUpdate([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeUpdate([]byte(`{"id":1}`))
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = DecodeUpdate([]byte(`{"@type":"updateAuthorizationState","authorization_state":{}}`))
	assert.ErrorIs(t, err, ErrUnknownType)
}

// ── DecodeUser ───────────────────────────────────────────────────────────────

func TestDecodeUser(t *testing.T) {
	user, err := DecodeUser([]byte(`{"@type":"user","id":5,"first_name":"Ada","last_name":"L",
		"usernames":{"active_usernames":["ada","ada2"]},"phone_number":"123"}`))
	require.NoError(t, err)
	assert.Equal(t, User{ID: 5, FirstName: "Ada", LastName: "L", Username: "ada", PhoneNumber: "123"}, user)
	assert.Equal(t, "Ada L", user.DisplayName())
}

func TestDecodeUser_WrongType(t *testing.T) {
	_, err := DecodeUser([]byte(`{"@type":"chat","id":5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected @type")
}

// ── RequestError ─────────────────────────────────────────────────────────────

func TestOperatorMessage(t *testing.T) {
	reqErr := &RequestError{Code: 400, Message: "PHONE_NUMBER_INVALID"}
	wrapped := errors.Join(errors.New("submit phone"), reqErr)

	assert.Equal(t, "PHONE_NUMBER_INVALID", OperatorMessage(reqErr))
	assert.Equal(t, "PHONE_NUMBER_INVALID", OperatorMessage(wrapped))
	assert.Equal(t, "boom", OperatorMessage(errors.New("boom")))
}

func TestUserDisplayName_Fallbacks(t *testing.T) {
	assert.Equal(t, "@nick", User{Username: "nick"}.DisplayName())
	assert.Equal(t, "+100", User{PhoneNumber: "+100"}.DisplayName())
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "")
	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.2.3")
}
