// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by the decoders when an object has no "@type".
var ErrUnknownType = errors.New("object has no @type")

// RequestError is the error object the messaging library answers a failed
// request with. Message is human-readable and is shown to the operator as is.
type RequestError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Code, e.Message)
}

// OperatorMessage returns the text an operator should see for err: the
// library's message verbatim for a [RequestError], err.Error() otherwise.
func OperatorMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
