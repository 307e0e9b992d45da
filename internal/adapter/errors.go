package adapter

import "errors"

// Transport-level errors. They are wrapped together with the response body,
// so callers should use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("session not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("gateway internal error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrAdapterClosed is returned for calls made after Close.
	ErrAdapterClosed = errors.New("adapter closed")
	// ErrStreamClosed is reported by Err once an update stream has ended
	// while the adapter was still open.
	ErrStreamClosed = errors.New("update stream closed")
	// ErrUnexpectedResponse is returned when a response has an unexpected
	// "@type".
	ErrUnexpectedResponse = errors.New("unexpected response")
)
