// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Gateway "@type" names of plain objects.
const (
	TypeOK                = "ok"
	TypeError             = "error"
	TypeUser              = "user"
	TypeMessageText       = "messageText"
	TypeMessageSenderUser = "messageSenderUser"
	TypeMessageSenderChat = "messageSenderChat"
)

type typeTag struct {
	Type string `json:"@type"`
}

// PeekType returns the "@type" of a gateway JSON object.
func PeekType(data []byte) (string, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return "", fmt.Errorf("decode object type: %w", err)
	}
	if tag.Type == "" {
		return "", ErrUnknownType
	}
	return tag.Type, nil
}

type updateAuthorizationStateJSON struct {
	AuthorizationState json.RawMessage `json:"authorization_state"`
}

type updateNewMessageJSON struct {
	Message messageJSON `json:"message"`
}

type messageJSON struct {
	ID       int64 `json:"id"`
	ChatID   int64 `json:"chat_id"`
	SenderID struct {
		Type   string `json:"@type"`
		UserID int64  `json:"user_id"`
		ChatID int64  `json:"chat_id"`
	} `json:"sender_id"`
	Date    int64 `json:"date"`
	Content struct {
		Type string `json:"@type"`
		Text struct {
			Text string `json:"text"`
		} `json:"text"`
		Caption struct {
			Text string `json:"text"`
		} `json:"caption"`
	} `json:"content"`
}

type authorizationStateWaitCodeJSON struct {
	CodeInfo struct {
		PhoneNumber string `json:"phone_number"`
		Type        struct {
			Length int `json:"length"`
		} `json:"type"`
		Timeout int `json:"timeout"`
	} `json:"code_info"`
}

type authorizationStateWaitPasswordJSON struct {
	PasswordHint string `json:"password_hint"`
}

type userJSON struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Usernames *struct {
		ActiveUsernames []string `json:"active_usernames"`
	} `json:"usernames"`
	PhoneNumber string `json:"phone_number"`
}

// DecodeUpdate decodes one update object. Update types the client does not
// model decode into [UpdateUnknown] without error.
func DecodeUpdate(data []byte) (Update, error) {
	typ, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeUpdateAuthorizationState:
		var raw updateAuthorizationStateJSON
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		state, err := DecodeAuthorizationState(raw.AuthorizationState)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return UpdateAuthorizationState{State: state}, nil
	case TypeUpdateNewMessage:
		var raw updateNewMessageJSON
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return UpdateNewMessage{Message: raw.Message.toModel()}, nil
	default:
		return UpdateUnknown{Type: typ}, nil
	}
}

// DecodeAuthorizationState decodes one authorization state object. Unknown
// states decode into [AuthorizationStateUnknown] without error.
func DecodeAuthorizationState(data []byte) (AuthorizationState, error) {
	typ, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeAuthorizationStateWaitParameters:
		return AuthorizationStateWaitParameters{}, nil
	case TypeAuthorizationStateWaitPhoneNumber:
		return AuthorizationStateWaitPhoneNumber{}, nil
	case TypeAuthorizationStateWaitCode:
		var raw authorizationStateWaitCodeJSON
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return AuthorizationStateWaitCode{CodeInfo: CodeInfo{
			PhoneNumber: raw.CodeInfo.PhoneNumber,
			Length:      raw.CodeInfo.Type.Length,
			Timeout:     raw.CodeInfo.Timeout,
		}}, nil
	case TypeAuthorizationStateWaitPassword:
		var raw authorizationStateWaitPasswordJSON
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		return AuthorizationStateWaitPassword{PasswordHint: raw.PasswordHint}, nil
	case TypeAuthorizationStateReady:
		return AuthorizationStateReady{}, nil
	case TypeAuthorizationStateLoggingOut:
		return AuthorizationStateLoggingOut{}, nil
	case TypeAuthorizationStateClosing:
		return AuthorizationStateClosing{}, nil
	case TypeAuthorizationStateClosed:
		return AuthorizationStateClosed{}, nil
	default:
		return AuthorizationStateUnknown{Type: typ}, nil
	}
}

// DecodeUser decodes a "user" object.
func DecodeUser(data []byte) (User, error) {
	typ, err := PeekType(data)
	if err != nil {
		return User{}, err
	}
	if typ != TypeUser {
		return User{}, fmt.Errorf("decode user: unexpected @type %q", typ)
	}

	var raw userJSON
	if err = json.Unmarshal(data, &raw); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}

	user := User{
		ID:          raw.ID,
		FirstName:   raw.FirstName,
		LastName:    raw.LastName,
		PhoneNumber: raw.PhoneNumber,
	}
	if raw.Usernames != nil && len(raw.Usernames.ActiveUsernames) > 0 {
		user.Username = raw.Usernames.ActiveUsernames[0]
	}
	return user, nil
}

func (m messageJSON) toModel() Message {
	msg := Message{
		ID:     m.ID,
		ChatID: m.ChatID,
		Date:   time.Unix(m.Date, 0).UTC(),
	}

	switch m.SenderID.Type {
	case TypeMessageSenderUser:
		msg.SenderID = m.SenderID.UserID
	case TypeMessageSenderChat:
		msg.SenderID = m.SenderID.ChatID
	}

	switch {
	case m.Content.Type == TypeMessageText:
		msg.Text = m.Content.Text.Text
	case m.Content.Caption.Text != "":
		msg.Text = "[" + m.Content.Type + "] " + m.Content.Caption.Text
	default:
		msg.Text = "[" + m.Content.Type + "]"
	}

	return msg
}
