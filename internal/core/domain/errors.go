package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the upstream backend rejects a
	// login with 401.
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")

	// ErrUpstreamUnavailable covers every other login failure: network
	// unreachable, upstream 5xx, timeout.
	ErrUpstreamUnavailable = errors.New("falha na conexão com o servidor")

	// ErrTooManyAttempts is returned when the login throttle blocks an account.
	ErrTooManyAttempts = errors.New("muitas tentativas de login, aguarde")

	// ErrSessionNotFound means the store holds no record for the session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupt means a stored session record could not be parsed.
	// The store discards the record before returning this; callers treat the
	// user as logged out.
	ErrSessionCorrupt = errors.New("stored session record is corrupt")

	// ErrUnknownRole is returned when a role tag is outside the closed set.
	ErrUnknownRole = errors.New("unknown role tag")

	ErrForbidden = errors.New("access forbidden")
)
