package api

import "errors"

var (
	// ErrUnavailable means no response reached the client at all.
	ErrUnavailable = errors.New("server unreachable")

	// ErrLoginFailed covers both a rejected login and an ok response that is
	// missing any of the identity fields.
	ErrLoginFailed = errors.New("login failed")

	// ErrAlreadyRegistered is the fixed outcome for HTTP 409 on registration,
	// regardless of the response body.
	ErrAlreadyRegistered = errors.New("user or e-mail already registered")

	// ErrValidation is returned for HTTP 400 on registration. When the server
	// body carries a detail message it is wrapped around this sentinel.
	ErrValidation = errors.New("invalid registration data")

	// ErrRequestFailed is the generic outcome for any other failure status.
	ErrRequestFailed = errors.New("request failed")
)
